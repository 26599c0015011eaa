package report

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCountsBySeverity(t *testing.T) {
	c := &Collector{}
	Reportf(c, SeverityWarning, "unresolved %s", "Foo")
	c.Report(SeverityError, "boom")
	c.Report(SeverityDebug, "noise")

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "unresolved Foo", entries[0].Message)
	assert.Equal(t, 1, c.Count(SeverityError))
	assert.Equal(t, 2, c.Count(SeverityWarning))
	assert.Equal(t, 3, c.Count(SeverityDebug))
}

func TestCollectorConcurrentReports(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Report(SeverityInfo, "x")
		}()
	}
	wg.Wait()
	assert.Len(t, c.Entries(), 50)
}

func TestTeeAndNil(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	r := Tee(a, nil, b)
	r.Report(SeverityNotice, "hello")
	assert.Len(t, a.Entries(), 1)
	assert.Len(t, b.Entries(), 1)

	assert.NotPanics(t, func() { Reportf(nil, SeverityError, "ignored") })
	assert.NotPanics(t, func() { Discard.Report(SeverityError, "ignored") })
}

func TestLogReporterNeverPanics(t *testing.T) {
	r := NewLogReporter("rstdoc.test")
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityNotice, SeverityInfo, SeverityDebug} {
		assert.NotPanics(t, func() { r.Report(s, "message") })
	}
	assert.Equal(t, "warning", SeverityWarning.String())
}
