package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionWrapsAround(t *testing.T) {
	s := NewSelection()

	s.Previous(3)
	idx, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, idx, "previous from the first row wraps to the last")

	s.Next(3)
	idx, _ = s.Selected()
	assert.Equal(t, 0, idx, "next from the last row wraps to the first")

	s.Next(3)
	idx, _ = s.Selected()
	assert.Equal(t, 1, idx)
}

func TestSelectionCircularForAnyLength(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := NewSelection()
		for i := 0; i < n-1; i++ {
			s.Next(n)
		}
		idx, _ := s.Selected()
		assert.Equal(t, n-1, idx)

		s.Next(n)
		idx, _ = s.Selected()
		assert.Equal(t, 0, idx, "length %d", n)

		s.Previous(n)
		idx, _ = s.Selected()
		assert.Equal(t, n-1, idx, "length %d", n)
	}
}

func TestSelectionNoopOnEmpty(t *testing.T) {
	s := NewSelection()
	s.Reconcile(0)

	s.Next(0)
	s.Previous(0)
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReconcileInvariant(t *testing.T) {
	for prior := 0; prior < 8; prior++ {
		for n := 0; n < 8; n++ {
			s := Selection{index: prior, valid: true}
			s.Reconcile(n)
			idx, ok := s.Selected()
			if n == 0 {
				assert.False(t, ok, "prior=%d n=%d", prior, n)
				continue
			}
			assert.True(t, ok, "prior=%d n=%d", prior, n)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n, "prior=%d n=%d", prior, n)
		}
	}
}

func TestReconcileClampsAndKeeps(t *testing.T) {
	s := Selection{index: 5, valid: true}
	s.Reconcile(3)
	idx, _ := s.Selected()
	assert.Equal(t, 2, idx)

	s = Selection{index: 1, valid: true}
	s.Reconcile(3)
	idx, _ = s.Selected()
	assert.Equal(t, 1, idx)

	s = Selection{}
	s.Reconcile(4)
	idx, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
