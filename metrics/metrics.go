// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus counters for pedigree searches.
//
// A nil *Recorder is valid and records nothing, so library code can call it
// unconditionally.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Candidate stages.
const (
	StageRejected = "rejected"
	StageVerified = "verified"
	StageEmitted  = "emitted"
)

// Recorder holds the search counters.
type Recorder struct {
	attempts   *prometheus.CounterVec
	candidates *prometheus.CounterVec
	rounds     *prometheus.CounterVec
}

// NewRecorder registers the counters on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kinship_attempts_total",
			Help: "Relationship assignment attempts, labelled by relation and outcome.",
		}, []string{"relation", "outcome"}),
		candidates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kinship_candidates_total",
			Help: "Fully assigned candidate graphs, labelled by stage.",
		}, []string{"stage"}),
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kinship_rounds_total",
			Help: "Degree rounds entered, labelled by degree.",
		}, []string{"degree"}),
	}
}

// Attempt counts one assignment attempt. outcome is "ok" or a rejection reason.
func (r *Recorder) Attempt(relation, outcome string) {
	if r == nil {
		return
	}
	r.attempts.WithLabelValues(relation, outcome).Inc()
}

// Candidate counts one candidate graph reaching stage.
func (r *Recorder) Candidate(stage string) {
	if r == nil {
		return
	}
	r.candidates.WithLabelValues(stage).Inc()
}

// Round counts one entry into a degree round.
func (r *Recorder) Round(degree int) {
	if r == nil {
		return
	}
	r.rounds.WithLabelValues(strconv.Itoa(degree)).Inc()
}
