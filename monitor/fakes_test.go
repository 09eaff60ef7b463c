package monitor

import (
	"context"
	"time"

	"github.com/berochitiri/procsnipe/model"
)

const mb = 1024 * 1024

type fakeSource struct {
	procs  []model.RawProcess
	err    error
	calls  int
	killed []int32
	deny   map[int32]bool
}

func (f *fakeSource) Enumerate(ctx context.Context) ([]model.RawProcess, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.RawProcess, len(f.procs))
	copy(out, f.procs)
	return out, nil
}

func (f *fakeSource) Terminate(pid int32) bool {
	if f.deny[pid] {
		return false
	}
	f.killed = append(f.killed, pid)
	return true
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sampleProcs() []model.RawProcess {
	return []model.RawProcess{
		{PID: 1, Name: "chrome.exe", CPUPercent: 30.0, MemoryBytes: 200 * mb},
		{PID: 2, Name: "steam.exe", CPUPercent: 5.0, MemoryBytes: 100 * mb},
		{PID: 3, Name: "notepad.exe", CPUPercent: 1.0, MemoryBytes: 10 * mb},
	}
}

func names(view []model.ProcessRecord) []string {
	out := make([]string, len(view))
	for i, r := range view {
		out[i] = r.Name
	}
	return out
}
