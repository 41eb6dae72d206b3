package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func TestFake_AfterFiresOnAdvance(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(2 * time.Second)

	c.Advance(time.Second)
	select {
	case <-ch:
		t.Fatal("fired too early")
	default:
	}

	c.Advance(time.Second)
	select {
	case got := <-ch:
		assert.Equal(t, epoch.Add(2*time.Second), got)
	default:
		t.Fatal("did not fire")
	}
}

func TestFake_AfterNonPositiveFiresImmediately(t *testing.T) {
	c := Fake(epoch)
	select {
	case <-c.After(0):
	default:
		t.Fatal("expected immediate fire")
	}
	assert.Equal(t, 0, c.PendingCount())
}

func TestFake_AfterFuncOrderAndStop(t *testing.T) {
	c := Fake(epoch)
	var order []string

	c.AfterFunc(3*time.Second, func() { order = append(order, "third") })
	c.AfterFunc(1*time.Second, func() { order = append(order, "first") })
	stopped := c.AfterFunc(2*time.Second, func() { order = append(order, "stopped") })

	require.True(t, stopped.Stop())
	require.False(t, stopped.Stop())

	c.Advance(5 * time.Second)
	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, 0, c.PendingCount())
}

func TestFake_AfterFuncNonPositiveRunsInline(t *testing.T) {
	c := Fake(epoch)
	called := false
	timer := c.AfterFunc(0, func() { called = true })

	assert.True(t, called)
	assert.False(t, timer.Stop())
}

func TestFake_TickerFiresEachInterval(t *testing.T) {
	c := Fake(epoch)
	tk := c.NewTicker(time.Second)
	defer tk.Stop()

	for i := 1; i <= 3; i++ {
		c.Advance(time.Second)
		select {
		case got := <-tk.C:
			assert.Equal(t, epoch.Add(time.Duration(i)*time.Second), got)
		default:
			t.Fatalf("tick %d missing", i)
		}
	}

	tk.Stop()
	c.Advance(time.Second)
	select {
	case <-tk.C:
		t.Fatal("tick after stop")
	default:
	}
}

func TestFake_NewTickerPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { Fake(epoch).NewTicker(0) })
}

func TestFake_WaitForTimers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})

	go func() {
		<-c.After(time.Minute)
		close(done)
	}()

	c.WaitForTimers(1)
	c.Advance(time.Minute)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter never released")
	}
}

func TestReal_AfterFuncStop(t *testing.T) {
	c := Real()
	timer := c.AfterFunc(time.Hour, func() { t.Error("must not fire") })
	assert.True(t, timer.Stop())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
