package timemachine

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	m := newRegisterMachine(5)
	assert.NoError(t, m.Change(add(3), 1))
	val(t, m, 1)

	c := NewCollector(m)
	assert.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP timemachine_deltas_applied_total Total number of forward deltas materialized
# TYPE timemachine_deltas_applied_total counter
timemachine_deltas_applied_total 1
# HELP timemachine_reverse_log_entries Number of applied changes retained for undo
# TYPE timemachine_reverse_log_entries gauge
timemachine_reverse_log_entries 1
# HELP timemachine_seeks_total Total number of position seeks performed
# TYPE timemachine_seeks_total counter
timemachine_seeks_total 2
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"timemachine_deltas_applied_total",
		"timemachine_reverse_log_entries",
		"timemachine_seeks_total",
	)
	assert.NoError(t, err)
}
