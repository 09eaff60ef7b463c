// Package proc wraps the operating system process table.
package proc

import (
	"context"
	"errors"

	"github.com/berochitiri/procsnipe/model"
)

// ErrInvalidPID is returned for PIDs that can never name a process.
var ErrInvalidPID = errors.New("invalid PID")

// Enumerator takes full snapshots of the process table.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]model.RawProcess, error)
}

// Terminator kills processes. Terminate reports false instead of failing
// when the process is gone, protected, or not ours to kill.
type Terminator interface {
	Terminate(pid int32) bool
}

// Source is the capability shared by the interactive loop and the
// background monitor.
type Source interface {
	Enumerator
	Terminator
}
