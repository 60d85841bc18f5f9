package avl

// Node is a single entry of the tree.
type Node[V any] struct {
	left   *Node[V] // left sub-tree
	right  *Node[V] // right sub-tree
	key    string   // key part for ordering
	value  V        // value part for data storage
	height int      // 1 for a leaf
}

func newNode[V any](key string, value V) *Node[V] {
	return &Node[V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// Key - read the key from a node
func (p *Node[V]) Key() string {
	return p.key
}

// Value - read the value from a node
func (p *Node[V]) Value() V {
	return p.value
}

// Left - the left child, nil if absent
func (p *Node[V]) Left() *Node[V] {
	return p.left
}

// Right - the right child, nil if absent
func (p *Node[V]) Right() *Node[V] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[V]) Height() int {
	return height(p)
}

// Balance - height(left) - height(right)
func (p *Node[V]) Balance() int {
	return balanceFactor(p)
}

func height[V any](p *Node[V]) int {
	if p == nil {
		return 0
	}
	return p.height
}

func balanceFactor[V any](p *Node[V]) int {
	if p == nil {
		return 0
	}
	return height(p.left) - height(p.right)
}

func updateHeight[V any](p *Node[V]) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// Tree - type to hold the root node of a tree and its counters
type Tree[V any] struct {
	root  *Node[V]
	count int
	ops   Counters
}

// New - create an initially empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return tree.root == nil
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Height - height of the whole tree, 0 when empty
func (tree *Tree[V]) Height() int {
	return height(tree.root)
}
