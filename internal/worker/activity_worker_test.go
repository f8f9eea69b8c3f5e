package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

type fakeCompleter struct {
	mu        sync.Mutex
	pending   []repository.PendingActivity
	pendErr   error
	completed []string
}

func (f *fakeCompleter) PendingActivities(context.Context) ([]repository.PendingActivity, error) {
	return f.pending, f.pendErr
}

func (f *fakeCompleter) AutoCompleteActivity(_ context.Context, playerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, playerID)
	return nil
}

func (f *fakeCompleter) Completed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.completed...)
}

func TestActivityWorker_ResumesOnStart(t *testing.T) {
	now := time.Now()
	svc := &fakeCompleter{pending: []repository.PendingActivity{
		{PlayerID: "overdue", Activity: domain.ActivityState{EndTime: now.Add(-time.Hour)}},
		{PlayerID: "soon", Activity: domain.ActivityState{EndTime: now.Add(30 * time.Millisecond)}},
		{PlayerID: "later", Activity: domain.ActivityState{EndTime: now.Add(time.Hour)}},
	}}

	w := NewActivityWorker(svc, nil)
	w.Start(context.Background())

	require.Eventually(t, func() bool { return len(svc.Completed()) == 2 }, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{"overdue", "soon"}, svc.Completed())
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, 0, w.Pending())
}

func TestActivityWorker_StartLoadError(t *testing.T) {
	svc := &fakeCompleter{pendErr: errors.New("db down")}
	w := NewActivityWorker(svc, nil)
	w.Start(context.Background())

	assert.Equal(t, 0, w.Pending())
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestActivityWorker_SchedulesFromEvents(t *testing.T) {
	svc := &fakeCompleter{}
	w := NewActivityWorker(svc, nil)
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	e := event.NewPlayerEvent(domain.EventTypeActivityStarted, "p1", domain.ActivityStartedPayload{
		PlayerID: "p1", LocationName: "Outskirts Road", EndTime: time.Now().Add(20 * time.Millisecond),
	})
	require.NoError(t, bus.Publish(context.Background(), e))

	require.Eventually(t, func() bool { return len(svc.Completed()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "p1", svc.Completed()[0])
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestActivityWorker_RescheduleReplacesTimer(t *testing.T) {
	svc := &fakeCompleter{}
	w := NewActivityWorker(svc, nil)

	w.Schedule("p1", time.Now().Add(time.Hour))
	w.Schedule("p1", time.Now().Add(2*time.Hour))
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	w.Schedule("p1", time.Now().Add(-time.Minute))
	assert.Empty(t, svc.Completed(), "nothing runs after shutdown")
}
