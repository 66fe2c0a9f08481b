package rdxplot

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// EventID is the composite key shared by the fit-variable and weight
// ntuples: (runNumber, eventNumber).
type EventID struct {
	Run   uint32
	Event uint64
}

func (id EventID) String() string {
	return fmt.Sprintf("run=%d event=%d", id.Run, id.Event)
}

// ErrNoAssociation is returned when an event present in one ntuple has
// no matching entry in the other.
var ErrNoAssociation = errors.New("rdxplot: no event association")

// OpenTree opens the named tree inside a ROOT file. The returned
// closer releases the file and must be called after the tree is no
// longer used.
func OpenTree(path, name string) (rtree.Tree, func() error, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rdxplot: could not open %q: %w", path, err)
	}

	obj, err := f.Get(name)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("rdxplot: could not get %q from %q: %w", name, path, err)
	}

	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, nil, fmt.Errorf("rdxplot: %q in %q is a %T, not a tree", name, path, obj)
	}

	return tree, f.Close, nil
}

// WeightIndex associates per-event weights to event IDs. It plays the
// role of the TTree index the original analysis builds before adding
// the weight tree as a friend.
type WeightIndex struct {
	weights map[EventID]float64
}

// BuildWeightIndex scans the weight tree once, reading runNumber,
// eventNumber and the named weight branch. The event ID must be unique
// within the tree.
func BuildWeightIndex(tree rtree.Tree, branch string) (*WeightIndex, error) {
	var (
		run    uint32
		event  uint64
		weight float64
	)
	rvars := []rtree.ReadVar{
		{Name: "runNumber", Value: &run},
		{Name: "eventNumber", Value: &event},
		{Name: branch, Value: &weight},
	}

	r, err := rtree.NewReader(tree, rvars)
	if err != nil {
		return nil, fmt.Errorf("rdxplot: could not read weight tree: %w", err)
	}
	defer r.Close()

	idx := &WeightIndex{weights: make(map[EventID]float64, int(tree.Entries()))}
	err = r.Read(func(ctx rtree.RCtx) error {
		id := EventID{Run: run, Event: event}
		if _, dup := idx.weights[id]; dup {
			return fmt.Errorf("rdxplot: duplicate %v at entry %d", id, ctx.Entry)
		}
		idx.weights[id] = weight
		return nil
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// Len returns the number of indexed events.
func (idx *WeightIndex) Len() int {
	return len(idx.weights)
}

// Weight looks up the weight for one event.
func (idx *WeightIndex) Weight(id EventID) (float64, error) {
	w, ok := idx.weights[id]
	if !ok {
		return 0, fmt.Errorf("%w for %v", ErrNoAssociation, id)
	}
	return w, nil
}

// ScanVar reads one float64 branch from the tree along with the event
// ID branches, calling fn once per entry. A non-zero maxEntries limits
// the scan to that many entries starting at firstEntry, mirroring the
// entry window of TTree::Draw.
func ScanVar(tree rtree.Tree, name string, firstEntry, maxEntries int64, fn func(id EventID, v float64) error) error {
	var (
		run   uint32
		event uint64
		value float64
	)
	rvars := []rtree.ReadVar{
		{Name: "runNumber", Value: &run},
		{Name: "eventNumber", Value: &event},
		{Name: name, Value: &value},
	}

	n := tree.Entries()
	beg := firstEntry
	if beg < 0 {
		beg = 0
	}
	if beg > n {
		beg = n
	}
	end := n
	if maxEntries > 0 && beg+maxEntries < n {
		end = beg + maxEntries
	}

	r, err := rtree.NewReader(tree, rvars, rtree.WithRange(beg, end))
	if err != nil {
		return fmt.Errorf("rdxplot: could not read branch %q: %w", name, err)
	}
	defer r.Close()

	return r.Read(func(ctx rtree.RCtx) error {
		return fn(EventID{Run: run, Event: event}, value)
	})
}
