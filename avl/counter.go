package avl

// Counters tracks the structural work done by a tree.
type Counters struct {
	Inserts  int // nodes created
	Searches int // nodes visited by searches
}

// Counters returns a snapshot of both counters.
func (tree *Tree[V]) Counters() Counters {
	return tree.ops
}

// InsertOpCount returns the number of nodes created since the last reset.
func (tree *Tree[V]) InsertOpCount() int {
	return tree.ops.Inserts
}

// SearchOpCount returns the number of nodes visited by searches since the
// last reset.
func (tree *Tree[V]) SearchOpCount() int {
	return tree.ops.Searches
}

func (tree *Tree[V]) ResetSearchOpCount() {
	tree.ops.Searches = 0
}

func (tree *Tree[V]) ResetInsertOpCount() {
	tree.ops.Inserts = 0
}
