package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresExactlyLimitTimes(t *testing.T) {
	const (
		delay = 100 * time.Millisecond
		limit = 5
		step  = 16 * time.Millisecond
	)

	var fired []time.Duration
	var ticks []int
	var now time.Duration
	tm := New(delay, func(tick int) {
		fired = append(fired, now)
		ticks = append(ticks, tick)
	}, WithLimit(limit))

	// Run well past limit*delay of simulated time.
	for now = 0; now <= 3*limit*delay; now += step {
		tm.CheckTick(now)
	}

	require.Len(t, fired, limit)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ticks)
	assert.True(t, tm.Done())
	assert.Equal(t, limit, tm.Count())

	for i := 1; i < len(fired); i++ {
		assert.GreaterOrEqual(t, fired[i]-fired[i-1], delay, "firing %d too early", i)
	}
}

func TestTimerFirstCallOnlyRecordsBaseline(t *testing.T) {
	calls := 0
	tm := New(50*time.Millisecond, func(int) { calls++ })

	tm.CheckTick(1000 * time.Millisecond)
	assert.Equal(t, 0, calls, "first call must only record the baseline")

	tm.CheckTick(1049 * time.Millisecond)
	assert.Equal(t, 0, calls)

	tm.CheckTick(1050 * time.Millisecond)
	assert.Equal(t, 1, calls, "exactly delay elapsed fires")
	assert.False(t, tm.Done(), "unlimited timer never finishes")
}

func TestTimerFireOnStart(t *testing.T) {
	var ticks []int
	tm := New(10*time.Millisecond, func(tick int) { ticks = append(ticks, tick) },
		WithFireOnStart(), WithLimit(2))

	for now := time.Duration(0); now < time.Second; now += time.Millisecond {
		tm.CheckTick(now)
	}

	assert.Equal(t, []int{0, 1, 2}, ticks)
	assert.Equal(t, 2, tm.Count())
}

func TestTimerDoneNeverFiresAgain(t *testing.T) {
	calls := 0
	tm := New(time.Millisecond, func(int) { calls++ }, WithLimit(1))

	tm.CheckTick(0)
	tm.CheckTick(time.Millisecond)
	require.True(t, tm.Done())

	tm.CheckTick(time.Hour)
	tm.CheckTick(2 * time.Hour)
	assert.Equal(t, 1, calls)
}

func TestTimerReset(t *testing.T) {
	calls := 0
	tm := New(time.Millisecond, func(int) { calls++ }, WithLimit(1))
	tm.CheckTick(0)
	tm.CheckTick(time.Millisecond)
	require.True(t, tm.Done())

	tm.Reset()
	assert.False(t, tm.Done())
	tm.CheckTick(10 * time.Millisecond)
	tm.CheckTick(11 * time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestTimerZeroLimit(t *testing.T) {
	tm := New(time.Millisecond, func(int) { t.Fatal("must not fire") }, WithLimit(0))
	tm.CheckTick(0)
	tm.CheckTick(time.Second)
	assert.True(t, tm.Done())
}
