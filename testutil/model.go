package testutil

import (
	"fmt"
	"slices"
)

// OpKind is the kind of a container mutation.
type OpKind int

const (
	OpAppend OpKind = iota
	OpInsert
	OpTrim
)

func (k OpKind) String() string {
	switch k {
	case OpAppend:
		return "append"
	case OpInsert:
		return "insert"
	case OpTrim:
		return "trim"
	default:
		return "unknown"
	}
}

// Op is one mutation. For OpAppend, Index is the index the container is
// expected to assign.
type Op struct {
	Kind       OpKind
	Trajectory int
	Index      int
	Data       string
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d, %d)=%q", o.Kind, o.Trajectory, o.Index, o.Data)
}

// Entry is a stored (trajectory, index, data) triple.
type Entry struct {
	Trajectory int
	Index      int
	Data       string
}

type modelTrajectory struct {
	locked  bool
	indices []int // sorted
	data    map[int]string
}

// Model is a slow, obviously correct reference of the sparse container.
type Model struct {
	trajectories map[int]*modelTrajectory
	seq          int
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{trajectories: make(map[int]*modelTrajectory)}
}

// Locked reports whether appends to trajectory are forbidden.
func (m *Model) Locked(trajectory int) bool {
	t, ok := m.trajectories[trajectory]
	return ok && t.locked
}

// Entries returns every entry ordered by trajectory and then by index.
func (m *Model) Entries() []Entry {
	ids := make([]int, 0, len(m.trajectories))
	for id := range m.trajectories {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []Entry
	for _, id := range ids {
		t := m.trajectories[id]
		for _, index := range t.indices {
			out = append(out, Entry{Trajectory: id, Index: index, Data: t.data[index]})
		}
	}
	return out
}

// Next picks a random operation that is valid in the current state over
// trajectories [0, numTrajectories), applies it to the model and returns it.
func (m *Model) Next(rng *RNG, numTrajectories int) Op {
	trajectory := rng.Intn(numTrajectories)
	t := m.get(trajectory)
	m.seq++
	data := fmt.Sprintf("v%d", m.seq)

	switch {
	case len(t.indices) > 0 && rng.Chance(0.2):
		index := t.indices[rng.Intn(len(t.indices))]
		if index == t.indices[len(t.indices)-1] {
			t.locked = true
		}
		t.remove(index)
		return Op{Kind: OpTrim, Trajectory: trajectory, Index: index}
	case t.locked || rng.Chance(0.1):
		index := t.freeIndex(rng)
		t.locked = true
		t.add(index, data)
		return Op{Kind: OpInsert, Trajectory: trajectory, Index: index, Data: data}
	default:
		index := 0
		if n := len(t.indices); n > 0 {
			index = t.indices[n-1] + 1
		}
		t.add(index, data)
		return Op{Kind: OpAppend, Trajectory: trajectory, Index: index, Data: data}
	}
}

func (m *Model) get(trajectory int) *modelTrajectory {
	t, ok := m.trajectories[trajectory]
	if !ok {
		t = &modelTrajectory{data: make(map[int]string)}
		m.trajectories[trajectory] = t
	}
	return t
}

func (t *modelTrajectory) freeIndex(rng *RNG) int {
	for {
		index := rng.Intn(2*len(t.indices) + 8)
		if _, ok := t.data[index]; !ok {
			return index
		}
	}
}

func (t *modelTrajectory) add(index int, data string) {
	pos, _ := slices.BinarySearch(t.indices, index)
	t.indices = slices.Insert(t.indices, pos, index)
	t.data[index] = data
}

func (t *modelTrajectory) remove(index int) {
	pos, _ := slices.BinarySearch(t.indices, index)
	t.indices = slices.Delete(t.indices, pos, pos+1)
	delete(t.data, index)
}
