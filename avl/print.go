package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print - write an ASCII graphic representation of the tree to w,
// returns the depth of the tree
func (tree *Tree[V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

func printTree[V any](w io.Writer, p *Node[V], prefix string, br branch, printData bool) int {
	if p == nil {
		return 0
	}
	rd := 0
	ld := 0
	if p.right != nil {
		t := "       "
		if br == left {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%q → %v h:%d %+d\n", p.key, p.value, p.height, balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%q\n", p.key)
	}
	if p.left != nil {
		t := "       "
		if br == right {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData)
	}
	return 1 + max(rd, ld)
}
