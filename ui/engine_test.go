package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardReleasesOnSuccess(t *testing.T) {
	released := false
	err := guard(func() error { return nil }, func() { released = true })

	assert.NoError(t, err)
	assert.True(t, released)
}

func TestGuardReleasesOnError(t *testing.T) {
	boom := errors.New("enumeration failed")
	released := false
	err := guard(func() error { return boom }, func() { released = true })

	require.ErrorIs(t, err, boom)
	assert.True(t, released)
}

func TestGuardRecoversPanic(t *testing.T) {
	released := false
	err := guard(func() error { panic("index out of range") }, func() { released = true })

	require.ErrorIs(t, err, ErrLoopPanic)
	assert.Contains(t, err.Error(), "index out of range")
	assert.True(t, released)
}
