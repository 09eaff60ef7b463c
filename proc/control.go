package proc

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// KillProcess forcefully terminates pid (SIGKILL on Unix, TerminateProcess
// on Windows).
func KillProcess(pid int32) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}

	p, err := process.NewProcess(pid)
	if err != nil {
		return fmt.Errorf("find PID %d: %w", pid, err)
	}
	if err := p.Kill(); err != nil {
		return fmt.Errorf("kill PID %d: %w", pid, err)
	}
	return nil
}

// Terminate kills pid once. Failures are logged and reported as false; the
// next refresh shows whether the process is really gone.
func (s *System) Terminate(pid int32) bool {
	if pid == s.self {
		s.logf("refusing to kill own PID %d", pid)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := KillProcess(pid); err != nil {
		s.logf("terminate: %v", err)
		return false
	}
	delete(s.handles, pid)
	return true
}

func (s *System) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
