package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/resume-site/constants"
)

func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Ingestion(constants.OutcomeOK)
	m.Ingestion(constants.OutcomeOK)
	m.Ingestion(constants.OutcomeSchemaParseFailed)
	m.Retrieval(constants.OutcomeNotFound)
	m.ObserveStage(constants.StageExtract, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.IngestionsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IngestionsTotal.WithLabelValues("schema_parse_failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RetrievalsTotal.WithLabelValues("not_found")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["resumesite_ingestions_total"])
	assert.True(t, names["resumesite_stage_duration_seconds"])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Ingestion(constants.OutcomeOK)
		m.Retrieval(constants.OutcomeOK)
		m.ObserveStage(constants.StagePersist, time.Second)
	})
}

func TestNew_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
