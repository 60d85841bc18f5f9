package avl

// Walk visits every node in ascending key order until fn returns false.
func (tree *Tree[V]) Walk(fn func(key string, value V) bool) {
	walk(tree.root, fn)
}

func walk[V any](p *Node[V], fn func(string, V) bool) bool {
	if p == nil {
		return true
	}
	if !walk(p.left, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return walk(p.right, fn)
}

// Keys returns all keys in ascending order.
func (tree *Tree[V]) Keys() []string {
	keys := make([]string, 0, tree.count)
	tree.Walk(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
