// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kinship/config"
	"github.com/katalvlaran/kinship/ingest"
	"github.com/katalvlaran/kinship/isomorph"
	"github.com/katalvlaran/kinship/logger"
	"github.com/katalvlaran/kinship/metrics"
	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
	"github.com/katalvlaran/kinship/render"
	"github.com/katalvlaran/kinship/search"
)

// constructFlags holds the flag values of the construct command.
type constructFlags struct {
	bios          string
	degrees       string
	probabilities string
	configPath    string
	maxDegree     int
	budget        int64
	workers       int
	dotDir        string
	noDedup       bool
}

func newConstructCmd() *cobra.Command {
	var f constructFlags
	cmd := &cobra.Command{
		Use:   "construct",
		Short: "Enumerate pedigrees consistent with the observations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runConstruct(cmd.Context(), cmd, cfg, &f)
		},
	}
	cmd.Flags().StringVar(&f.bios, "bios", "", "CSV table of individuals (required)")
	cmd.Flags().StringVar(&f.degrees, "degrees", "", "CSV table of pairwise degrees (required)")
	cmd.Flags().StringVar(&f.probabilities, "probabilities", "", "CSV table of interpretation weights")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	cmd.Flags().IntVar(&f.maxDegree, "max-degree", 0, "highest kinship degree to resolve")
	cmd.Flags().Int64Var(&f.budget, "budget", 0, "stop after this many search steps (0 = unlimited)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel workers")
	cmd.Flags().StringVar(&f.dotDir, "dot-dir", "", "write one DOT file per result into this directory")
	cmd.Flags().BoolVar(&f.noDedup, "no-dedup", false, "keep isomorphic results")
	_ = cmd.MarkFlagRequired("bios")
	_ = cmd.MarkFlagRequired("degrees")

	return cmd
}

// resolveConfig loads the config file (if any) and applies explicit flags on top.
func resolveConfig(cmd *cobra.Command, f *constructFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("max-degree") {
		cfg.MaxDegree = f.maxDegree
	}
	if flags.Changed("budget") {
		cfg.Budget = f.budget
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("dot-dir") {
		cfg.DotDir = f.dotDir
	}
	if f.noDedup {
		cfg.Dedup = false
	}

	return cfg, config.Validate(cfg)
}

func runConstruct(ctx context.Context, cmd *cobra.Command, cfg *config.Config, f *constructFlags) error {
	base, err := logger.New(cfg.Log.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = base.Sync() }()
	log := base.With(zap.String("run_id", uuid.NewString()))

	g, obs, err := ingest.Load(f.bios, f.degrees)
	if err != nil {
		return err
	}
	log.Info("input loaded",
		zap.Int("individuals", g.Len()),
		zap.Int("observations", obs.Len()),
		zap.Int("max_degree", cfg.MaxDegree),
	)

	var probs observation.Probabilities
	if f.probabilities != "" {
		if probs, err = ingest.LoadProbabilities(f.probabilities); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithBudget(cfg.Budget),
		search.WithWorkers(cfg.Workers),
		search.WithLogger(log),
		search.WithMetrics(metrics.NewRecorder(reg)),
	}
	if probs != nil {
		opts = append(opts, search.WithProbabilities(probs))
	}

	results, searchErr := search.ConstructAll(g, obs, cfg.MaxDegree, opts...)
	if searchErr != nil {
		log.Warn("search incomplete", zap.Error(searchErr), zap.Int("partial_results", len(results)))
	}
	if cfg.Dedup {
		before := len(results)
		results = isomorph.Dedup(results)
		log.Debug("deduplicated", zap.Int("before", before), zap.Int("after", len(results)))
	}

	out := cmd.OutOrStdout()
	for i, r := range results {
		fmt.Fprintf(out, "pedigree %d: %d individuals, signature %s\n", i+1, r.Len(), isomorph.Key(isomorph.Signature(r)))
		if cfg.DotDir != "" {
			if err := writeDOT(cfg.DotDir, i+1, r); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(out, "%d pedigree(s)\n", len(results))

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			log.Warn("metrics not written", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}

	return searchErr
}

func writeDOT(dir string, idx int, g *pedigree.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("pedigree_%03d", idx)
	file, err := os.Create(filepath.Join(dir, name+".dot"))
	if err != nil {
		return err
	}
	if err := render.WriteDOT(file, g, name); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
