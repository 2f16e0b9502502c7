package id

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b NodeID
		want int
	}{
		{"equal", NodeID{1, 2}, NodeID{1, 2}, 0},
		{"lower trajectory wins", NodeID{0, 9}, NodeID{1, 0}, -1},
		{"higher trajectory", NodeID{2, 0}, NodeID{1, 5}, 1},
		{"same trajectory lower index", NodeID{3, 1}, NodeID{3, 2}, -1},
		{"same trajectory higher index", NodeID{3, 4}, NodeID{3, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestEquality(t *testing.T) {
	assert.True(t, SubmapID{1, 2} == SubmapID{1, 2})
	assert.True(t, SubmapID{1, 2} != SubmapID{2, 1})
	assert.True(t, NodeID{0, 1} != NodeID{0, 2})
}

func TestString(t *testing.T) {
	assert.Equal(t, "(0, 3)", NodeID{TrajectoryID: 0, NodeIndex: 3}.String())
	assert.Equal(t, "(12, 7)", fmt.Sprint(SubmapID{TrajectoryID: 12, SubmapIndex: 7}))
}

func TestMake(t *testing.T) {
	assert.Equal(t, NodeID{TrajectoryID: 4, NodeIndex: 2}, Make[NodeID](4, 2))
	assert.Equal(t, SubmapID{TrajectoryID: 4, SubmapIndex: 2}, Make[SubmapID](4, 2))

	s := Make[SubmapID](5, 3)
	assert.Equal(t, 5, s.Trajectory())
	assert.Equal(t, 3, s.Index())
}

func TestSortIsLexicographic(t *testing.T) {
	ids := []SubmapID{{2, 0}, {0, 1}, {1, 5}, {0, 0}, {1, 0}}
	slices.SortFunc(ids, Compare[SubmapID])

	assert.Equal(t, []SubmapID{{0, 0}, {0, 1}, {1, 0}, {1, 5}, {2, 0}}, ids)
}
