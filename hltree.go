package edigen

import (
	"fmt"
	"strconv"
)

// HLNode is one hierarchical level within a transaction. Nodes are
// stored in an arena indexed by sequential id; the parent is recorded
// as an id rather than a pointer.
type HLNode struct {
	// ID is the HL01 hierarchical id, assigned sequentially from 1
	ID int
	// ParentID is the HL02 parent id, 0 for a root node
	ParentID int
	// Level is the HL03 hierarchical level code
	Level string
	// HasChildren reports whether any later node names this node as
	// its parent (HL04)
	HasChildren bool
}

// HLTree builds the parent-indexed hierarchy of HL nodes for the
// transaction types that require one (837P, 270, 271, 278). IDs are
// assigned in a single increasing sequence in creation order; the
// tree is therefore always emitted pre-order.
type HLTree struct {
	nodes []HLNode
}

// NewHLTree returns an empty tree
func NewHLTree() *HLTree {
	return &HLTree{}
}

// Root appends a new root node (no parent) with the given level code
// and returns its id.
func (t *HLTree) Root(level string) int {
	t.nodes = append(
		t.nodes, HLNode{
			ID:    len(t.nodes) + 1,
			Level: level,
		},
	)
	return len(t.nodes)
}

// Child appends a new node under the given parent id and returns its
// id. The parent must already exist; referencing an unassigned id is
// a programming error.
func (t *HLTree) Child(parent int, level string) int {
	if parent < 1 || parent > len(t.nodes) {
		panic(fmt.Sprintf("HL parent id %d does not exist", parent))
	}
	t.nodes[parent-1].HasChildren = true
	t.nodes = append(
		t.nodes, HLNode{
			ID:       len(t.nodes) + 1,
			ParentID: parent,
			Level:    level,
		},
	)
	return len(t.nodes)
}

// Node returns the node with the given id
func (t *HLTree) Node(id int) HLNode {
	if id < 1 || id > len(t.nodes) {
		panic(fmt.Sprintf("HL id %d does not exist", id))
	}
	return t.nodes[id-1]
}

// Nodes returns all nodes in id order
func (t *HLTree) Nodes() []HLNode {
	nodes := make([]HLNode, len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// Len returns the number of nodes in the tree
func (t *HLTree) Len() int {
	return len(t.nodes)
}

// Segment renders the HL segment for the node with the given id:
// HL01 id, HL02 parent (empty for roots), HL03 level code, HL04
// child code (1 when the node has children, 0 otherwise).
func (t *HLTree) Segment(id int) Segment {
	n := t.Node(id)
	parent := ""
	if n.ParentID > 0 {
		parent = strconv.Itoa(n.ParentID)
	}
	childCode := "0"
	if n.HasChildren {
		childCode = "1"
	}
	return Seg(
		hlSegmentId,
		strconv.Itoa(n.ID),
		parent,
		n.Level,
		childCode,
	)
}
