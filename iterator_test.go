package trajmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/trajmap/id"
)

func TestIterator_Empty(t *testing.T) {
	m := NewMapByID[id.NodeID, string]()

	assert.True(t, m.Empty())
	assert.True(t, m.Begin().Done())
	assert.Zero(t, len(collectIDs(m)))

	requireViolation(t, ErrIteratorExhausted, func() { m.Begin().Next() })
	requireViolation(t, ErrIteratorExhausted, func() { m.Begin().ID() })
	requireViolation(t, ErrIteratorExhausted, func() { m.Begin().Data() })
}

func TestIterator_SkipsMissingAndEmptyTrajectories(t *testing.T) {
	m := NewMapByID[id.NodeID, string]()
	m.Append(0, "a")
	m.Append(0, "b")
	m.Append(2, "c")

	assert.Equal(t, []id.NodeID{
		{TrajectoryID: 0, NodeIndex: 0},
		{TrajectoryID: 0, NodeIndex: 1},
		{TrajectoryID: 2, NodeIndex: 0},
	}, collectIDs(m))

	// Emptying trajectory 0 keeps its entry but iteration skips it.
	m.Trim(id.NodeID{TrajectoryID: 0, NodeIndex: 1})
	m.Trim(id.NodeID{TrajectoryID: 0, NodeIndex: 0})
	m.Insert(id.NodeID{TrajectoryID: 1, NodeIndex: 0}, "d")
	m.Trim(id.NodeID{TrajectoryID: 1, NodeIndex: 0})

	assert.Equal(t, []id.NodeID{{TrajectoryID: 2, NodeIndex: 0}}, collectIDs(m))
	assert.False(t, m.Empty())

	m.Trim(id.NodeID{TrajectoryID: 2, NodeIndex: 0})
	assert.True(t, m.Empty())
	assert.Equal(t, 3, len(collectTrajectories(m)))
}

func collectTrajectories[I id.ID[I], T any](m *MapByID[I, T]) []int {
	var out []int
	for tr := range m.TrajectoryIDs() {
		out = append(out, tr)
	}
	return out
}

func TestIterator_IDAndData(t *testing.T) {
	m := NewMapByID[id.SubmapID, string]()
	m.Insert(id.SubmapID{TrajectoryID: 3, SubmapIndex: 10}, "late")
	m.Append(1, "early")

	it := m.Begin()
	require.False(t, it.Done())
	assert.Equal(t, id.SubmapID{TrajectoryID: 1, SubmapIndex: 0}, it.ID())
	assert.Equal(t, "early", it.Data())

	it.Next()
	require.False(t, it.Done())
	assert.Equal(t, id.SubmapID{TrajectoryID: 3, SubmapIndex: 10}, it.ID())
	assert.Equal(t, "late", it.Data())

	it.Next()
	assert.True(t, it.Done())
}

func TestIterator_Equal(t *testing.T) {
	m := NewMapByID[id.NodeID, int]()
	m.Append(0, 0)
	m.Append(0, 1)

	a, b := m.Begin(), m.Begin()
	assert.True(t, a.Equal(b))

	a.Next()
	assert.False(t, a.Equal(b))
	b.Next()
	assert.True(t, a.Equal(b))

	a.Next()
	assert.True(t, a.Done())
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	b.Next()
	assert.True(t, a.Equal(b), "exhausted iterators are equal")

	empty := NewMapByID[id.NodeID, int]()
	assert.True(t, empty.Begin().Equal(a))
}

func TestIterator_Restartable(t *testing.T) {
	m := NewMapByID[id.NodeID, int]()
	for i := range 5 {
		m.Append(i%2, i)
	}

	first := collectIDs(m)
	second := collectIDs(m)
	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
}

func TestIterator_AllStopsEarly(t *testing.T) {
	m := NewMapByID[id.NodeID, int]()
	for i := range 6 {
		m.Append(i%3, i)
	}

	var got []int
	for _, v := range m.All() {
		if len(got) == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 3}, got)
}

func TestMapByID_LowerBound(t *testing.T) {
	m := NewMapByID[id.NodeID, string]()
	m.Insert(id.NodeID{TrajectoryID: 1, NodeIndex: 2}, "1/2")
	m.Insert(id.NodeID{TrajectoryID: 1, NodeIndex: 5}, "1/5")
	m.Append(4, "4/0")

	tests := []struct {
		name       string
		trajectory int
		minIndex   int
		want       *id.NodeID
	}{
		{"before first", 0, 0, &id.NodeID{TrajectoryID: 1, NodeIndex: 2}},
		{"exact", 1, 2, &id.NodeID{TrajectoryID: 1, NodeIndex: 2}},
		{"between", 1, 3, &id.NodeID{TrajectoryID: 1, NodeIndex: 5}},
		{"past trajectory end", 1, 6, &id.NodeID{TrajectoryID: 4, NodeIndex: 0}},
		{"missing trajectory", 2, 0, &id.NodeID{TrajectoryID: 4, NodeIndex: 0}},
		{"past everything", 4, 1, nil},
		{"beyond last trajectory", 9, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := m.LowerBound(tt.trajectory, tt.minIndex)
			if tt.want == nil {
				assert.True(t, it.Done())
				return
			}
			require.False(t, it.Done())
			assert.Equal(t, *tt.want, it.ID())
		})
	}
}
