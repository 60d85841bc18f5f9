package avl

import "strings"

// Search - find a specific key, the value is the zero value when absent
func (tree *Tree[V]) Search(key string) (V, bool) {
	return tree.SearchFunc(func(nodeKey string) int {
		return strings.Compare(key, nodeKey)
	})
}

// SearchFunc descends the tree steered by cmp, which must report the sign
// of the wanted key relative to nodeKey: negative to go left, positive to
// go right and zero on a match. cmp has to agree with the insertion order
// for the descent to find anything.
func (tree *Tree[V]) SearchFunc(cmp func(nodeKey string) int) (V, bool) {
	if p := search(cmp, tree.root, &tree.ops); p != nil {
		return p.value, true
	}

	var zero V
	return zero, false
}

func search[V any](cmp func(string) int, p *Node[V], ops *Counters) *Node[V] {
	if p == nil {
		return nil
	}

	ops.Searches += 1
	switch c := cmp(p.key); {
	case c < 0:
		return search(cmp, p.left, ops)
	case c > 0:
		return search(cmp, p.right, ops)
	default:
		return p
	}
}
