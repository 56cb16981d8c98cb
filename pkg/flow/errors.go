package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection guards Advance: committing nothing is a no-op.
	ErrEmptySelection = errors.New("no option selected")

	// ErrNoHistory guards Retreat at the root question.
	ErrNoHistory = errors.New("no previous question")
)

// UnknownNodeError means a transition resolved to a node that does not
// exist. With a tree that passed Validate this cannot happen; seeing it
// at runtime means the graph configuration is broken.
type UnknownNodeError struct {
	ID NodeID
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown flow node %q", e.ID)
}

// UnknownOptionError means the submitted value is not one of the current
// question's options.
type UnknownOptionError struct {
	Node  NodeID
	Value string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("option %q is not valid for question %q", e.Value, e.Node)
}

// SelectionLimitError rejects a toggle that would exceed a multi-choice
// question's maximum. It is a user notice, not a failure: the selection
// is left unchanged.
type SelectionLimitError struct {
	Max int
}

func (e *SelectionLimitError) Error() string {
	return fmt.Sprintf("you can select up to %d options", e.Max)
}
