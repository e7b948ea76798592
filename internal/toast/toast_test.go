package toast

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowRendersThroughSink(t *testing.T) {
	var got []Toast
	c := NewCenter(func(tst Toast) { got = append(got, tst) })

	id := c.SuccessMsg("Login successful!")
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, Success, got[0].Type)
	assert.Equal(t, DefaultDuration, got[0].Duration)
}

func TestAutoDismissRemovesToast(t *testing.T) {
	c := NewCenter(nil)

	c.Show("short lived", Info, 20*time.Millisecond)
	require.Len(t, c.Active(), 1)

	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, time.Second, 10*time.Millisecond)
}

func TestRemoveByID(t *testing.T) {
	c := NewCenter(nil)

	keep := c.Show("stay", Warning, time.Minute)
	drop := c.Show("go", Error, time.Minute)
	require.Len(t, c.Active(), 2)

	c.Remove(drop)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)
}

func TestTerminalSinkOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewCenter(TerminalSink(&buf))

	c.ErrorMsg("something broke")
	assert.Contains(t, buf.String(), "[error]")
	assert.Contains(t, buf.String(), "something broke")
}
