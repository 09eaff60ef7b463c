package model

// RawProcess is one row of a process table enumeration.
type RawProcess struct {
	PID         int32
	Name        string
	CPUPercent  float64 // since the previous sample of the same process
	MemoryBytes uint64
}

// ProcessRecord is a classified process as shown in the list. Records are
// rebuilt on every refresh and never mutated afterwards.
type ProcessRecord struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
	Flagged     bool
}

// Mode is the active interaction mode.
type Mode int

const (
	NormalMode Mode = iota
	SearchMode
	HelpMode
)

func (m Mode) String() string {
	switch m {
	case SearchMode:
		return "Search"
	case HelpMode:
		return "Help"
	default:
		return "Normal"
	}
}

// ViewState is everything the user controls about what the list shows.
type ViewState struct {
	Mode        Mode
	Query       string
	SortKey     SortKey
	FlaggedOnly bool
}

// DefaultViewState starts in normal mode sorted by CPU with no filters.
func DefaultViewState() ViewState {
	return ViewState{Mode: NormalMode, SortKey: SortByCPU}
}
