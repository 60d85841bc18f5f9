package avl

import "strings"

// Insert - insert a new node into the tree.
// returns false, leaving the tree untouched, when the key already exists
func (tree *Tree[V]) Insert(key string, value V) bool {
	added := false
	tree.root, added = insert(key, value, tree.root, &tree.ops)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func insert[V any](key string, value V, p *Node[V], ops *Counters) (*Node[V], bool) {
	if p == nil {
		ops.Inserts += 1
		return newNode(key, value), true
	}

	added := false
	switch strings.Compare(key, p.key) {
	case -1: // key < p.key
		p.left, added = insert(key, value, p.left, ops)
	case +1: // key > p.key
		p.right, added = insert(key, value, p.right, ops)
	default: // first writer wins
		return p, false
	}

	if !added {
		return p, false
	}

	updateHeight(p)
	return rebalance(p, key), true
}
