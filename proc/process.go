package proc

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/berochitiri/procsnipe/model"
)

type handle struct {
	proc      *process.Process
	createdMS int64
}

// System enumerates processes through gopsutil. CPU usage is a delta
// between two samples of the same handle, so handles are cached by PID for
// the lifetime of the System. Calls are serialized.
type System struct {
	mu      sync.Mutex
	handles map[int32]handle
	self    int32
	logger  *log.Logger
}

// NewSystem creates a System and primes the CPU sample of every running
// process so the first real enumeration already has a baseline.
func NewSystem(ctx context.Context, logger *log.Logger) (*System, error) {
	s := &System{
		handles: make(map[int32]handle),
		self:    int32(os.Getpid()),
		logger:  logger,
	}
	if _, err := s.Enumerate(ctx); err != nil {
		return nil, fmt.Errorf("initial process scan: %w", err)
	}
	return s, nil
}

// Enumerate lists every process still alive when it is inspected.
func (s *System) Enumerate(ctx context.Context) ([]model.RawProcess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	seen := make(map[int32]struct{}, len(procs))
	out := make([]model.RawProcess, 0, len(procs))

	for _, p := range procs {
		h := s.handleFor(ctx, p)

		name, err := h.proc.NameWithContext(ctx)
		if err != nil {
			// exited between listing and inspection
			continue
		}
		seen[p.Pid] = struct{}{}

		cpu, err := h.proc.PercentWithContext(ctx, 0)
		if err != nil {
			cpu = 0
		}

		var rss uint64
		if mi, err := h.proc.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			rss = mi.RSS
		}

		out = append(out, model.RawProcess{
			PID:         p.Pid,
			Name:        name,
			CPUPercent:  cpu,
			MemoryBytes: rss,
		})
	}

	for pid := range s.handles {
		if _, ok := seen[pid]; !ok {
			delete(s.handles, pid)
		}
	}
	return out, nil
}

// handleFor returns the cached handle for p, replacing it when the PID now
// belongs to a different process.
func (s *System) handleFor(ctx context.Context, p *process.Process) handle {
	created, _ := p.CreateTimeWithContext(ctx)
	if h, ok := s.handles[p.Pid]; ok && h.createdMS == created {
		return h
	}
	h := handle{proc: p, createdMS: created}
	s.handles[p.Pid] = h
	return h
}

// Cached reports how many process handles are currently held.
func (s *System) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Close releases the handle cache.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles = make(map[int32]handle)
	return nil
}
