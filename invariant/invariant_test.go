package invariant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailf(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, IsViolation(err))
		assert.Contains(t, err.Error(), "split index 7 out of range [0, 3]")
	}()
	Failf("split index %d out of range [0, %d]", 7, 3)
}

func TestCheckf(t *testing.T) {
	assert.NotPanics(t, func() { Checkf(true, "never") })
	assert.Panics(t, func() { Checkf(false, "boom") })
}

func TestIsViolation(t *testing.T) {
	assert.False(t, IsViolation(nil))
	assert.False(t, IsViolation(errors.New("plain")))
}

func TestRecover(t *testing.T) {
	t.Run("violation becomes error", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err)
			Failf("length mismatch: %d != %d", 1, 2)
			return nil
		}
		err := run()
		require.Error(t, err)
		assert.True(t, IsViolation(err))
	})

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err)
			return nil
		}
		assert.NoError(t, run())
	})

	t.Run("other panics propagate", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err)
			panic("unrelated")
		}
		assert.PanicsWithValue(t, "unrelated", func() { _ = run() })
	})
}
