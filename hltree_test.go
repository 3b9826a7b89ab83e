package edigen

import "testing"

func TestHLTreeSequentialIds(t *testing.T) {
	tree := NewHLTree()
	root := tree.Root(hlLevelInformationSource)
	assertEqual(t, root, 1)

	provider := tree.Child(root, hlLevelInformationReceiver)
	assertEqual(t, provider, 2)

	for i := 0; i < 5; i++ {
		id := tree.Child(provider, hlLevelSubscriber)
		assertEqual(t, id, i+3)
	}
	assertEqual(t, tree.Len(), 7)

	for i, n := range tree.Nodes() {
		assertEqual(t, n.ID, i+1)
		if n.ParentID >= n.ID {
			t.Errorf("node %d references parent %d", n.ID, n.ParentID)
		}
	}
}

func TestHLTreeChildFlags(t *testing.T) {
	tree := NewHLTree()
	root := tree.Root(hlLevelInformationSource)
	provider := tree.Child(root, hlLevelInformationReceiver)
	subscriber := tree.Child(provider, hlLevelSubscriber)
	event := tree.Child(subscriber, hlLevelPatientEvent)

	assertEqual(t, tree.Node(root).HasChildren, true)
	assertEqual(t, tree.Node(provider).HasChildren, true)
	assertEqual(t, tree.Node(subscriber).HasChildren, true)
	assertEqual(t, tree.Node(event).HasChildren, false)
}

func TestHLTreeSegment(t *testing.T) {
	tree := NewHLTree()
	root := tree.Root(hlLevelInformationSource)
	child := tree.Child(root, hlLevelSubscriber)

	assertEqual(
		t,
		tree.Segment(root).Format(DefaultDelimiters),
		"HL*1**20*1~",
	)
	assertEqual(
		t,
		tree.Segment(child).Format(DefaultDelimiters),
		"HL*2*1*22*0~",
	)
}

func TestHLTreeBadParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unassigned parent id")
		}
	}()
	tree := NewHLTree()
	tree.Child(1, hlLevelSubscriber)
}
