package avl

// rotateRight lifts the left child of p into its place.
//
//	    p            x
//	   / \          / \
//	  x   c  ==>   a   p
//	 / \              / \
//	a   b            b   c
func rotateRight[V any](p *Node[V]) *Node[V] {
	x := p.left
	b := x.right

	x.right = p
	p.left = b

	updateHeight(p)
	updateHeight(x)
	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[V any](p *Node[V]) *Node[V] {
	y := p.right
	b := y.left

	y.left = p
	p.right = b

	updateHeight(p)
	updateHeight(y)
	return y
}

// rebalance restores the balance of p after key was inserted below it.
// The cases are tested in a fixed order and at most one applies.
func rebalance[V any](p *Node[V], key string) *Node[V] {
	balance := balanceFactor(p)

	switch {
	case balance > 1 && key < p.left.key: // left-left
		return rotateRight(p)
	case balance > 1 && key > p.left.key: // left-right
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	case balance < -1 && key > p.right.key: // right-right
		return rotateLeft(p)
	case balance < -1 && key < p.right.key: // right-left
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
