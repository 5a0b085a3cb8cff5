// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/metrics"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.Attempt("sibling", "ok")
	r.Attempt("sibling", "ok")
	r.Attempt("parent", "cycle")
	r.Candidate(metrics.StageEmitted)
	r.Round(2)

	const want = `
# HELP kinship_attempts_total Relationship assignment attempts, labelled by relation and outcome.
# TYPE kinship_attempts_total counter
kinship_attempts_total{outcome="cycle",relation="parent"} 1
kinship_attempts_total{outcome="ok",relation="sibling"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "kinship_attempts_total"))

	n, err := testutil.GatherAndCount(reg, "kinship_candidates_total", "kinship_rounds_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.Attempt("sibling", "ok")
		r.Candidate(metrics.StageRejected)
		r.Round(1)
	})
}
