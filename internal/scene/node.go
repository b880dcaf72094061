// Package scene is a minimal transform hierarchy: named nodes with a parent,
// children, a local pose and an active flag. It stands in for the host
// engine's scene graph wherever pooled instances need a parent scope.
package scene

import "github.com/bnema/gamekit/internal/domain"

type Node struct {
	name     string
	parent   *Node
	children []*Node
	pose     domain.Pose
	active   bool
}

func NewNode(name string) *Node {
	return &Node{name: name, pose: domain.IdentityPose(), active: true}
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a snapshot of the direct children.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

func (n *Node) ChildCount() int {
	return len(n.children)
}

// SetParent moves the node under parent, detaching it from its previous
// parent. A nil parent makes the node a root.
func (n *Node) SetParent(parent *Node) {
	if n.parent == parent {
		return
	}

	if n.parent != nil {
		n.parent.removeChild(n)
	}

	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
}

func (n *Node) removeChild(child *Node) {
	for i, candidate := range n.children {
		if candidate == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) Pose() domain.Pose {
	return n.pose
}

func (n *Node) SetPose(pose domain.Pose) {
	n.pose = pose
}

func (n *Node) Active() bool {
	return n.active
}

func (n *Node) SetActive(active bool) {
	n.active = active
}

// Clone deep-copies the node and its subtree. The copy has no parent.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	clone := n.cloneTree()
	clone.name = n.name + " (Clone)"
	return clone
}

func (n *Node) cloneTree() *Node {
	clone := &Node{name: n.name, pose: n.pose, active: n.active}
	for _, child := range n.children {
		childClone := child.cloneTree()
		childClone.parent = clone
		clone.children = append(clone.children, childClone)
	}
	return clone
}
