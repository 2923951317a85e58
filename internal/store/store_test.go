package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sports/internal/model"
)

type recorder struct {
	events []string
}

func (r *recorder) ItemMoved(from, to int) { r.events = append(r.events, fmt.Sprintf("moved %d %d", from, to)) }
func (r *recorder) ItemRemoved(at int)     { r.events = append(r.events, fmt.Sprintf("removed %d", at)) }
func (r *recorder) FullReload()            { r.events = append(r.events, "reload") }

func items(titles ...string) []model.Item {
	out := make([]model.Item, 0, len(titles))
	for _, t := range titles {
		out = append(out, model.New(t, t+" news", model.ImageRef("img_"+t)))
	}
	return out
}

func titles(s *Store) []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.At(i).Title)
	}
	return out
}

func TestLoadCopiesInput(t *testing.T) {
	in := items("A", "B", "C")
	s := New()
	s.Load(in)

	in[0] = model.New("Z", "", "")
	assert.Equal(t, []string{"A", "B", "C"}, titles(s))
}

func TestMoveShiftsIntermediateItems(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 4, []string{"B", "C", "D", "E", "A"}},
		{4, 0, []string{"E", "A", "B", "C", "D"}},
		{1, 3, []string{"A", "C", "D", "B", "E"}},
		{3, 1, []string{"A", "D", "B", "C", "E"}},
		{2, 3, []string{"A", "B", "D", "C", "E"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_to_%d", tt.from, tt.to), func(t *testing.T) {
			s := New()
			s.Load(items("A", "B", "C", "D", "E"))
			before := s.Items()

			require.True(t, s.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, titles(s))
			assert.Equal(t, before[tt.from], s.At(tt.to))
			assert.ElementsMatch(t, before, s.Items())
		})
	}
}

func TestMoveEmitsEvent(t *testing.T) {
	s := New()
	s.Load(items("A", "B", "C"))
	r := &recorder{}
	s.SetListener(r)

	s.Move(0, 2)
	assert.Equal(t, []string{"moved 0 2"}, r.events)
}

func TestMoveOutOfBoundsIsNoop(t *testing.T) {
	s := New()
	s.Load(items("A", "B"))
	r := &recorder{}
	s.SetListener(r)

	assert.False(t, s.Move(-1, 0))
	assert.False(t, s.Move(0, 2))
	assert.False(t, s.Move(1, 1))
	assert.Equal(t, []string{"A", "B"}, titles(s))
	assert.Empty(t, r.events)
}

func TestRemovePreservesOrder(t *testing.T) {
	for at := 0; at < 4; at++ {
		s := New()
		s.Load(items("A", "B", "C", "D"))
		before := titles(s)

		require.True(t, s.Remove(at))
		assert.Equal(t, 3, s.Len())

		want := append(append([]string{}, before[:at]...), before[at+1:]...)
		assert.Equal(t, want, titles(s))
	}
}

func TestRemoveEmitsEvent(t *testing.T) {
	s := New()
	s.Load(items("A", "B"))
	r := &recorder{}
	s.SetListener(r)

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(5))
	assert.Equal(t, []string{"removed 1"}, r.events)
}

func TestResetRestoresOriginal(t *testing.T) {
	orig := items("A", "B", "C", "D")
	s := New()
	s.Load(orig)
	s.Move(0, 3)
	s.Remove(1)
	s.Remove(0)
	s.Move(1, 0)

	r := &recorder{}
	s.SetListener(r)
	s.Reset(orig)

	assert.Equal(t, orig, s.Items())
	assert.Equal(t, []string{"reload"}, r.events)
}

func TestScenarioMoveRemoveReset(t *testing.T) {
	orig := items("A", "B", "C")
	s := New()
	s.Load(orig)

	s.Move(0, 2)
	assert.Equal(t, []string{"B", "C", "A"}, titles(s))

	s.Remove(1)
	assert.Equal(t, []string{"B", "A"}, titles(s))

	s.Reset(orig)
	assert.Equal(t, []string{"A", "B", "C"}, titles(s))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New()
	s.Load(items("A", "B"))

	out := s.Items()
	out[0] = model.New("Z", "", "")
	assert.Equal(t, "A", s.At(0).Title)
}

func TestDuplicatesAllowed(t *testing.T) {
	s := New()
	s.Load(items("A", "A", "B"))
	require.True(t, s.Remove(0))
	assert.Equal(t, []string{"A", "B"}, titles(s))
}
