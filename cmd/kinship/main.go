// SPDX-License-Identifier: MIT

// Command kinship reconstructs candidate pedigrees from individuals and
// pairwise kinship-degree observations.
//
//	kinship construct --bios bios.csv --degrees degrees.csv --max-degree 2 --dot-dir out/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kinship",
	Short: "Reconstruct family trees from kinship-degree observations",
	Long: `kinship enumerates every pedigree consistent with a table of individuals
(sex, maternal marker, paternal marker, age) and a table of pairwise kinship
degrees, up to a maximum degree.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newConstructCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
