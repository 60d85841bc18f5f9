package avl

import (
	"github.com/pkg/errors"
)

// Check verifies ordering, cached heights and balance of every node.
// It returns the first violation found, nil for a consistent tree.
func (tree *Tree[V]) Check() error {
	n, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return errors.Errorf("node count %d, expected %d", n, tree.count)
	}
	return nil
}

// internal: lo and hi are the exclusive key bounds inherited from the
// ancestors, nil when unbounded
func check[V any](p *Node[V], lo, hi *string) (int, error) {
	if p == nil {
		return 0, nil
	}
	if lo != nil && p.key <= *lo {
		return 0, errors.Errorf("node %q: not greater than ancestor %q", p.key, *lo)
	}
	if hi != nil && p.key >= *hi {
		return 0, errors.Errorf("node %q: not less than ancestor %q", p.key, *hi)
	}

	nl, err := check(p.left, lo, &p.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(p.right, &p.key, hi)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(height(p.left), height(p.right)); p.height != want {
		return 0, errors.Errorf("node %q: height %d, expected %d", p.key, p.height, want)
	}
	if b := balanceFactor(p); b < -1 || b > 1 {
		return 0, errors.Errorf("node %q: balance %+d out of range", p.key, b)
	}
	return 1 + nl + nr, nil
}
