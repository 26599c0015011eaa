// Package report is the sink for non-fatal problems found while converting
// documentation: unresolvable references, dropped annotations, serialization
// fallbacks.
package report

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNotice:
		return "notice"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Reporter receives non-fatal messages. Implementations must not panic.
type Reporter interface {
	Report(severity Severity, message string)
}

// Reportf formats a message and hands it to r. A nil r is ignored.
func Reportf(r Reporter, severity Severity, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(severity, fmt.Sprintf(format, args...))
}

// LogReporter forwards reports to a commonlog logger.
type LogReporter struct {
	log commonlog.Logger
}

func NewLogReporter(name string) *LogReporter {
	return &LogReporter{log: commonlog.GetLogger(name)}
}

func (r *LogReporter) Report(severity Severity, message string) {
	switch severity {
	case SeverityError:
		r.log.Error(message)
	case SeverityWarning:
		r.log.Warning(message)
	case SeverityNotice:
		r.log.Notice(message)
	case SeverityInfo:
		r.log.Info(message)
	default:
		r.log.Debug(message)
	}
}

type Entry struct {
	Severity Severity
	Message  string
}

// Collector records every report. It is safe for concurrent use so one
// collector can observe a whole batch.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

func (c *Collector) Report(severity Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Severity: severity, Message: message})
}

func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count returns how many entries were reported at the given severity or worse.
func (c *Collector) Count(atLeast Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.Severity <= atLeast {
			n++
		}
	}
	return n
}

type discard struct{}

func (discard) Report(Severity, string) {}

// Discard drops every report.
var Discard Reporter = discard{}

// Tee fans a report out to several reporters.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Report(severity Severity, message string) {
	for _, r := range t {
		if r != nil {
			r.Report(severity, message)
		}
	}
}
