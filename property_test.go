package trajmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/trajmap/id"
	"github.com/hupe1980/trajmap/testutil"
)

func TestMapByID_MatchesModel(t *testing.T) {
	for _, seed := range []int64{1, 7, 4711} {
		rng := testutil.NewRNG(seed)
		model := testutil.NewModel()
		m := NewMapByID[id.SubmapID, string]()

		for step := range 2000 {
			op := model.Next(rng, 5)
			i := id.SubmapID{TrajectoryID: op.Trajectory, SubmapIndex: op.Index}

			switch op.Kind {
			case testutil.OpAppend:
				require.Equal(t, i, m.Append(op.Trajectory, op.Data), "seed %d step %d: %s", seed, step, op)
			case testutil.OpInsert:
				m.Insert(i, op.Data)
			case testutil.OpTrim:
				m.Trim(i)
			}

			require.Equal(t, model.Locked(op.Trajectory), !m.CanAppend(op.Trajectory), "seed %d step %d: %s", seed, step, op)
			if model.Locked(op.Trajectory) {
				requireViolation(t, ErrAppendLocked, func() { m.Append(op.Trajectory, "never") })
			}
		}

		want := model.Entries()
		got := make([]testutil.Entry, 0, len(want))
		for i, data := range m.All() {
			got = append(got, testutil.Entry{Trajectory: i.TrajectoryID, Index: i.SubmapIndex, Data: data})
		}
		assert.Equal(t, want, got, "seed %d", seed)
		assert.Equal(t, len(want), m.Len())
		assert.Equal(t, len(want) == 0, m.Empty())

		for _, e := range want {
			assert.Equal(t, e.Data, m.At(id.SubmapID{TrajectoryID: e.Trajectory, SubmapIndex: e.Index}))
		}
	}
}
