package controller

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sports/internal/gesture"
	"github.com/idilsaglam/sports/internal/model"
	"github.com/idilsaglam/sports/internal/store"
)

type fakeRenderer struct {
	rows   store.RowSource
	events []string
}

func (f *fakeRenderer) Bind(rows store.RowSource) { f.rows = rows }
func (f *fakeRenderer) ItemMoved(from, to int)    { f.events = append(f.events, fmt.Sprintf("moved %d %d", from, to)) }
func (f *fakeRenderer) ItemRemoved(at int)        { f.events = append(f.events, fmt.Sprintf("removed %d", at)) }
func (f *fakeRenderer) FullReload()               { f.events = append(f.events, "reload") }

func (f *fakeRenderer) titles() []string {
	out := []string{}
	for i := 0; i < f.rows.Len(); i++ {
		out = append(out, f.rows.At(i).Title)
	}
	return out
}

func sports(titles ...string) []model.Item {
	out := make([]model.Item, 0, len(titles))
	for _, t := range titles {
		out = append(out, model.New(t, "", ""))
	}
	return out
}

func newAttached(t *testing.T, titles ...string) (*Controller, *fakeRenderer) {
	t.Helper()
	c := New(sports(titles...))
	r := &fakeRenderer{}
	c.Attach(r)
	c.Load()
	r.events = nil
	return c, r
}

func TestAttachRepaintsCurrentContents(t *testing.T) {
	c := New(sports("A", "B"))
	c.Load()

	r := &fakeRenderer{}
	c.Attach(r)
	require.NotNil(t, r.rows)
	assert.Equal(t, []string{"reload"}, r.events)
	assert.Equal(t, []string{"A", "B"}, r.titles())
}

func TestRepositionStepsOneSlotAtATime(t *testing.T) {
	c, r := newAttached(t, "A", "B", "C", "D")

	c.OnReposition(0, 3)
	assert.Equal(t, []string{"moved 0 1", "moved 1 2", "moved 2 3"}, r.events)
	assert.Equal(t, []string{"B", "C", "D", "A"}, r.titles())

	r.events = nil
	c.OnReposition(3, 1)
	assert.Equal(t, []string{"moved 3 2", "moved 2 1"}, r.events)
	assert.Equal(t, []string{"B", "A", "C", "D"}, r.titles())
}

func TestRepositionSamePositionIsNoop(t *testing.T) {
	c, r := newAttached(t, "A", "B")
	c.OnReposition(1, 1)
	assert.Empty(t, r.events)
}

func TestRepositionOutOfRangeStops(t *testing.T) {
	c, r := newAttached(t, "A", "B")
	c.OnReposition(1, 4)
	assert.Empty(t, r.events)
	assert.Equal(t, []string{"A", "B"}, r.titles())
}

func TestDismissOnlyHorizontal(t *testing.T) {
	c, r := newAttached(t, "A", "B", "C")

	c.OnDismiss(1, gesture.Up)
	c.OnDismiss(1, gesture.Down)
	assert.Empty(t, r.events)

	c.OnDismiss(1, gesture.Left)
	assert.Equal(t, []string{"A", "C"}, r.titles())
	c.OnDismiss(0, gesture.Right)
	assert.Equal(t, []string{"C"}, r.titles())
	assert.Equal(t, []string{"removed 1", "removed 0"}, r.events)
}

func TestResetReloadsOriginal(t *testing.T) {
	c, r := newAttached(t, "A", "B", "C")

	c.OnReposition(0, 2)
	c.OnDismiss(1, gesture.Left)
	assert.Equal(t, []string{"B", "A"}, r.titles())

	r.events = nil
	c.Reset()
	assert.Equal(t, []string{"reload"}, r.events)
	assert.Equal(t, []string{"A", "B", "C"}, r.titles())
}

func TestOriginalIsNotAliased(t *testing.T) {
	in := sports("A", "B")
	c := New(in)
	in[0] = model.New("Z", "", "")

	c.Load()
	assert.Equal(t, "A", c.Rows().At(0).Title)

	orig := c.Original()
	orig[1] = model.New("Y", "", "")
	assert.Equal(t, "B", c.Original()[1].Title)
}

func TestReattachKeepsSameStore(t *testing.T) {
	c, first := newAttached(t, "A", "B", "C")
	c.OnDismiss(0, gesture.Left)

	second := &fakeRenderer{}
	c.Attach(second)
	assert.Equal(t, []string{"B", "C"}, second.titles())
	assert.Same(t, first.rows, second.rows)

	c.OnDismiss(0, gesture.Right)
	assert.Equal(t, []string{"removed 0"}, second.events[1:])
	assert.Len(t, first.events, 1, "detached renderer gets no further events")
}

func TestReplace(t *testing.T) {
	c, r := newAttached(t, "A", "B", "C")
	c.Replace(sports("C", "A"))
	assert.Equal(t, []string{"reload"}, r.events)
	assert.Equal(t, []string{"C", "A"}, r.titles())
}
