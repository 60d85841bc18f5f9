// Package avl implements a height-balanced binary search tree keyed by
// strings, the index structure behind kbavl.
//
// Every node caches its height, and the tree is rebalanced on the way back
// up from each insertion with the classic four cases (left-left, left-right,
// right-right, right-left). Rotations only relink existing nodes.
//
// Insert and search report structural work through operation counters:
// one insert operation per node created and one search operation per node
// visited. The counters are passed explicitly into the traversals, so the
// traversal code touches no other state.
//
// Note: a tree is not safe for concurrent use, search included since it
// updates the counters. Guard it with a single mutex when it is shared.
//
// There is no deletion; keys are unique and the first inserted value for a
// key is kept.
package avl
