package model

import "sort"

type SortKey int

const (
	SortByName SortKey = iota
	SortByCPU
	SortByMemory
)

var sortKeyNames = []string{"Name", "Cpu", "Memory"}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return "Unknown"
	}
	return sortKeyNames[k]
}

// Next advances through Name -> Cpu -> Memory -> Name.
func (k SortKey) Next() SortKey {
	switch k {
	case SortByName:
		return SortByCPU
	case SortByCPU:
		return SortByMemory
	default:
		return SortByName
	}
}

// Sort orders records in place. Name sorts ascending, CPU and memory
// descending. Equal keys keep their input order.
func (k SortKey) Sort(records []ProcessRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		switch k {
		case SortByName:
			return a.Name < b.Name
		case SortByMemory:
			return a.MemoryBytes > b.MemoryBytes
		default:
			return a.CPUPercent > b.CPUPercent
		}
	})
}
