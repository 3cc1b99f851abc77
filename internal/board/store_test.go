package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestStore_ApplyNotifiesObserversWithNewSnapshot(t *testing.T) {
	var seen []model.Snapshot
	st := New(fixture(), ObserverFunc(func(s model.Snapshot) { seen = append(seen, s) }))

	got := st.Apply(ToggleComplete("t1"))

	require.Len(t, seen, 1)
	require.Equal(t, got, seen[0])
	task, ok := FindTask(seen[0], "t1")
	require.True(t, ok)
	require.True(t, task.Completed)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	st := New(fixture())

	s := st.Snapshot()
	s.Tasks[0].Title = "mutated"
	s.Columns = nil

	again := st.Snapshot()
	require.Equal(t, "Write docs", again.Tasks[0].Title)
	require.Len(t, again.Columns, 3)
}

func TestStore_TransformCannotLeakIntoPreviousSnapshot(t *testing.T) {
	st := New(fixture())
	before := st.Snapshot()

	st.Apply(func(s model.Snapshot) model.Snapshot {
		s.Tasks[0].Title = "changed"
		return s
	})

	require.Equal(t, "Write docs", before.Tasks[0].Title)
	require.Equal(t, "changed", st.Snapshot().Tasks[0].Title)
}

func TestStore_SubscribeCancel(t *testing.T) {
	st := New(fixture())
	calls := 0
	cancel := st.Subscribe(ObserverFunc(func(model.Snapshot) { calls++ }))

	st.Apply(ToggleComplete("t1"))
	cancel()
	st.Apply(ToggleComplete("t1"))

	require.Equal(t, 1, calls)
}

func TestStore_ObserversRunInSubscriptionOrder(t *testing.T) {
	var order []string
	st := New(fixture(),
		ObserverFunc(func(model.Snapshot) { order = append(order, "first") }),
	)
	st.Subscribe(ObserverFunc(func(model.Snapshot) { order = append(order, "second") }))

	st.Apply(nil)

	require.Equal(t, []string{"first", "second"}, order)
}

func TestCompose_AppliesLeftToRightAsOneStep(t *testing.T) {
	calls := 0
	st := New(fixture(), ObserverFunc(func(model.Snapshot) { calls++ }))

	s := st.Apply(Compose(ToggleSelect("t1"), MarkSelectedComplete()))

	require.Equal(t, 1, calls)
	task, _ := FindTask(s, "t1")
	require.True(t, task.Completed)
	require.Empty(t, s.SelectedTaskIDs)
}

func TestStore_ObserverMayReadAndApply(t *testing.T) {
	st := New(fixture())
	var seen model.Snapshot
	nested := false
	st.Subscribe(ObserverFunc(func(model.Snapshot) {
		seen = st.Snapshot()
		if !nested {
			nested = true
			st.Apply(ToggleComplete("t3"))
		}
	}))

	done := make(chan model.Snapshot, 1)
	go func() { done <- st.Apply(AddColumn("x")) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Apply blocked while an observer used the store")
	}
	require.Len(t, seen.Columns, 4)
	task, _ := FindTask(st.Snapshot(), "t3")
	require.True(t, task.Completed)
}
