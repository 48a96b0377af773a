package paycycle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesCalls(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Do(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "only the last call in the window should run")
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Bool
	d.Do(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load(), "Stop must cancel the pending call")
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, defaultDebounce, d.delay)
}
