package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/berochitiri/procsnipe/model"
	"github.com/berochitiri/procsnipe/proc"
)

// DefaultRefreshInterval is the minimum time between two enumerations.
const DefaultRefreshInterval = time.Second

// BuildView classifies raw, keeps the records state lets through and sorts
// them by state.SortKey. It has no side effects.
func BuildView(raw []model.RawProcess, c *model.Classifier, state model.ViewState) []model.ProcessRecord {
	query := strings.ToLower(state.Query)

	view := make([]model.ProcessRecord, 0, len(raw))
	for _, r := range raw {
		rec := model.ProcessRecord{
			PID:         r.PID,
			Name:        r.Name,
			CPUPercent:  r.CPUPercent,
			MemoryBytes: r.MemoryBytes,
			Flagged:     c.Classify(r.Name),
		}
		if state.FlaggedOnly && !rec.Flagged {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(rec.Name), query) {
			continue
		}
		view = append(view, rec)
	}

	state.SortKey.Sort(view)
	return view
}

// Pipeline turns enumerations into the list the user sees. Enumeration is
// rate limited to one per interval; between enumerations the last view is
// returned as is.
type Pipeline struct {
	source     proc.Enumerator
	classifier *model.Classifier
	interval   time.Duration
	now        func() time.Time

	lastRun  time.Time
	ran      bool
	raw      []model.RawProcess
	view     []model.ProcessRecord
	viewedAs model.ViewState
}

// NewPipeline builds a pipeline over source. A non-positive interval falls
// back to DefaultRefreshInterval.
func NewPipeline(source proc.Enumerator, c *model.Classifier, interval time.Duration) *Pipeline {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Pipeline{
		source:     source,
		classifier: c,
		interval:   interval,
		now:        time.Now,
	}
}

// Refresh enumerates when the interval has elapsed and rebuilds the view.
// Inside the interval it only rebuilds from the cached enumeration if state
// changed the filter or sort, otherwise the previous slice comes back
// unchanged. An enumeration error leaves the last good view in place.
func (p *Pipeline) Refresh(ctx context.Context, state model.ViewState) ([]model.ProcessRecord, error) {
	now := p.now()
	if p.ran && now.Sub(p.lastRun) < p.interval {
		if !sameFilter(state, p.viewedAs) {
			p.view = BuildView(p.raw, p.classifier, state)
			p.viewedAs = state
		}
		return p.view, nil
	}

	raw, err := p.source.Enumerate(ctx)
	if err != nil {
		return p.view, err
	}

	p.raw = raw
	p.view = BuildView(raw, p.classifier, state)
	p.viewedAs = state
	p.lastRun = now
	p.ran = true
	return p.view, nil
}

// Force makes the next Refresh enumerate regardless of the interval.
func (p *Pipeline) Force() {
	p.ran = false
}

// View returns the last built view.
func (p *Pipeline) View() []model.ProcessRecord {
	return p.view
}

// Total is the size of the last enumeration before filtering.
func (p *Pipeline) Total() int {
	return len(p.raw)
}

// Interval is the configured minimum time between enumerations.
func (p *Pipeline) Interval() time.Duration {
	return p.interval
}

// sameFilter ignores Mode: switching modes alone never changes the list.
func sameFilter(a, b model.ViewState) bool {
	return a.Query == b.Query && a.SortKey == b.SortKey && a.FlaggedOnly == b.FlaggedOnly
}
