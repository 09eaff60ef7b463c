package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pids(records []ProcessRecord) []int32 {
	out := make([]int32, len(records))
	for i, r := range records {
		out[i] = r.PID
	}
	return out
}

func TestSortKeyCycle(t *testing.T) {
	assert.Equal(t, SortByCPU, SortByName.Next())
	assert.Equal(t, SortByMemory, SortByCPU.Next())
	assert.Equal(t, SortByName, SortByMemory.Next())
}

func TestSortKeyString(t *testing.T) {
	assert.Equal(t, "Name", SortByName.String())
	assert.Equal(t, "Cpu", SortByCPU.String())
	assert.Equal(t, "Memory", SortByMemory.String())
	assert.Equal(t, "Unknown", SortKey(42).String())
}

func TestSortDirections(t *testing.T) {
	records := []ProcessRecord{
		{PID: 1, Name: "b", CPUPercent: 1, MemoryBytes: 300},
		{PID: 2, Name: "c", CPUPercent: 9, MemoryBytes: 100},
		{PID: 3, Name: "a", CPUPercent: 5, MemoryBytes: 200},
	}

	byName := append([]ProcessRecord(nil), records...)
	SortByName.Sort(byName)
	assert.Equal(t, []int32{3, 1, 2}, pids(byName))

	byCPU := append([]ProcessRecord(nil), records...)
	SortByCPU.Sort(byCPU)
	assert.Equal(t, []int32{2, 3, 1}, pids(byCPU))

	byMem := append([]ProcessRecord(nil), records...)
	SortByMemory.Sort(byMem)
	assert.Equal(t, []int32{1, 3, 2}, pids(byMem))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	records := []ProcessRecord{
		{PID: 10, Name: "same", CPUPercent: 2, MemoryBytes: 50},
		{PID: 11, Name: "same", CPUPercent: 2, MemoryBytes: 50},
		{PID: 12, Name: "other", CPUPercent: 7, MemoryBytes: 90},
		{PID: 13, Name: "same", CPUPercent: 2, MemoryBytes: 50},
	}

	for _, key := range []SortKey{SortByName, SortByCPU, SortByMemory} {
		sorted := append([]ProcessRecord(nil), records...)
		key.Sort(sorted)

		var ties []int32
		for _, r := range sorted {
			if r.Name == "same" {
				ties = append(ties, r.PID)
			}
		}
		assert.Equal(t, []int32{10, 11, 13}, ties, "sort by %s", key)
	}
}
