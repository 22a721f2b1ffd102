package selection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingNotifier struct {
	mu    sync.Mutex
	ids   []string
	err   error
	block chan struct{}
}

func (n *recordingNotifier) RecordViewed(_ context.Context, rec records.LocationRecord) error {
	if n.block != nil {
		<-n.block
	}
	n.mu.Lock()
	n.ids = append(n.ids, rec.ID)
	n.mu.Unlock()
	return n.err
}

func (n *recordingNotifier) seen() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.ids...)
}

func rec(id string) records.LocationRecord {
	return records.LocationRecord{ID: id, Variant: records.VariantPlots}
}

func TestSelectionRoundTrip(t *testing.T) {
	c := NewController(nil)
	var got []Transition
	c.Subscribe(func(tr Transition) { got = append(got, tr) })

	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Current())

	c.Select(rec("X"))
	require.NotNil(t, c.Current())
	assert.Equal(t, "X", c.Current().ID)

	c.Select(rec("Y"))
	assert.Equal(t, "Y", c.Current().ID)

	c.Dismiss()
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Current())

	require.Len(t, got, 3)
	assert.Equal(t, Idle, got[0].From)
	assert.Equal(t, Selected, got[0].To)
	// X -> Y never passes through Idle
	assert.Equal(t, Selected, got[1].From)
	assert.Equal(t, Selected, got[1].To)
	assert.Equal(t, "X", got[1].Previous.ID)
	assert.Equal(t, "Y", got[1].Current.ID)
	assert.Equal(t, Idle, got[2].To)
	assert.Nil(t, got[2].Current)
}

func TestDismissWhileIdleIsSilent(t *testing.T) {
	c := NewController(nil)
	calls := 0
	c.Subscribe(func(Transition) { calls++ })
	c.Dismiss()
	assert.Equal(t, 0, calls)
}

func TestCurrentReturnsCopy(t *testing.T) {
	c := NewController(nil)
	c.Select(rec("X"))
	cur := c.Current()
	cur.ID = "mutated"
	assert.Equal(t, "X", c.Current().ID)
}

func TestNotifierCalledOnEachSelect(t *testing.T) {
	n := &recordingNotifier{}
	c := NewController(n)

	c.Select(rec("A-1"))
	c.Select(rec("A-2"))
	c.Dismiss()
	c.Wait()

	assert.ElementsMatch(t, []string{"A-1", "A-2"}, n.seen())
}

func TestNotifierFailureDoesNotRevertSelection(t *testing.T) {
	n := &recordingNotifier{err: errors.New("analytics down")}
	c := NewController(n)

	c.Select(rec("A-1"))
	c.Wait()

	assert.Equal(t, Selected, c.State())
	assert.Equal(t, "A-1", c.Current().ID)
	assert.Equal(t, []string{"A-1"}, n.seen())
}

func TestSlowNotifierDoesNotBlockSelect(t *testing.T) {
	n := &recordingNotifier{block: make(chan struct{})}
	c := NewController(n)

	c.Select(rec("A-1"))
	assert.Equal(t, "A-1", c.Current().ID)
	assert.Empty(t, n.seen())

	close(n.block)
	c.Wait()
	assert.Equal(t, []string{"A-1"}, n.seen())
}
