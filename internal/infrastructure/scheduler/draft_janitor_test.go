package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	idle  atomic.Int64
}

func (s *countingSweeper) Sweep(idle time.Duration) int {
	s.calls.Add(1)
	s.idle.Store(int64(idle))
	return 2
}

func TestDraftJanitor_RunOnce(t *testing.T) {
	sw := &countingSweeper{}
	j := NewDraftJanitor(sw, "@every 1h", 30*time.Minute, zerolog.Nop())

	j.RunOnce()
	assert.Equal(t, int32(1), sw.calls.Load())
	assert.Equal(t, int64(30*time.Minute), sw.idle.Load())
}

func TestDraftJanitor_StartSchedules(t *testing.T) {
	j := NewDraftJanitor(&countingSweeper{}, "@every 1h", time.Minute, zerolog.Nop())
	require.NoError(t, j.Start())
	defer j.Stop()

	require.Eventually(t, func() bool { return !j.Next().IsZero() }, time.Second, 10*time.Millisecond)
	assert.WithinDuration(t, time.Now().Add(time.Hour), j.Next(), time.Minute)
}

func TestDraftJanitor_InvalidSpec(t *testing.T) {
	j := NewDraftJanitor(&countingSweeper{}, "no es cron", time.Minute, zerolog.Nop())
	assert.Error(t, j.Start())
}
