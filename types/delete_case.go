package types

import "fmt"

// DeleteCase classifies what a delete had to do to remove a key from a
// binary search tree.
type DeleteCase int

const (
	NotFound DeleteCase = iota
	Leaf
	OneChild
	TwoChildren
)

func (c DeleteCase) String() string {
	switch c {
	case NotFound:
		return "not_found"
	case Leaf:
		return "leaf"
	case OneChild:
		return "one_child"
	case TwoChildren:
		return "two_children"
	default:
		return fmt.Sprintf("delete_case(%d)", int(c))
	}
}
