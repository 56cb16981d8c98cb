package flow

// Engine walks a validated question tree. It owns no session state: every
// operation takes the session explicitly so the caller controls when the
// mutated session gets persisted. Operations that return an error leave
// the session untouched.
type Engine struct {
	tree Tree
}

// NewEngine validates the tree and wraps it. A validation failure is a
// configuration error and should abort startup.
func NewEngine(tree Tree) (*Engine, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return &Engine{tree: tree}, nil
}

// Node resolves a node ID against the tree.
func (e *Engine) Node(id NodeID) (*Node, error) {
	node, ok := e.tree[id]
	if !ok {
		return nil, &UnknownNodeError{ID: id}
	}
	return node, nil
}

// Current returns the session's current question.
func (e *Engine) Current(s *Session) (*Node, error) {
	return e.Node(s.Current)
}

// SelectOption records value into the session's in-progress selection.
// Single-choice questions replace the selection; multi-choice questions
// toggle membership, honoring the node's maximum.
func (e *Engine) SelectOption(s *Session, value string) error {
	node, err := e.Node(s.Current)
	if err != nil {
		return err
	}
	if !hasOption(node, value) {
		return &UnknownOptionError{Node: node.ID, Value: value}
	}

	if node.Mode == ModeSingle {
		s.Selection = []string{value}
		return nil
	}

	for i, v := range s.Selection {
		if v == value {
			s.Selection = append(s.Selection[:i], s.Selection[i+1:]...)
			return nil
		}
	}
	if node.MaxSelections > 0 && len(s.Selection) >= node.MaxSelections {
		return &SelectionLimitError{Max: node.MaxSelections}
	}
	s.Selection = append(s.Selection, value)
	return nil
}

// Advance commits the in-progress selection as the current question's
// answer, derives the category on branching questions, pushes the current
// question onto the history and moves to the transition target. It
// returns true when the target is the terminal sentinel; the caller then
// projects filters and clears the session.
func (e *Engine) Advance(s *Session) (bool, error) {
	if len(s.Selection) == 0 {
		return false, ErrEmptySelection
	}
	node, err := e.Node(s.Current)
	if err != nil {
		return false, err
	}

	answer := append([]string(nil), s.Selection...)
	s.Answers[node.ID] = answer
	e.deriveCategory(s, node.ID, answer)
	s.History = append(s.History, node.ID)

	next := node.Next(answer)
	if next == NodeTerminal {
		return true, nil
	}
	if _, ok := e.tree[next]; !ok {
		// Roll back: a broken transition must not corrupt the session.
		delete(s.Answers, node.ID)
		s.History = s.History[:len(s.History)-1]
		return false, &UnknownNodeError{ID: next}
	}

	s.Current = next
	s.Selection = append([]string(nil), s.Answers[next]...)
	return false, nil
}

// Retreat pops the previous question off the history and makes it
// current, moving its committed answer out of the answers map and back
// into the pending selection; the next Advance re-commits it. Backing
// onto a branching question also clears the derived category so a changed
// answer can re-derive it.
func (e *Engine) Retreat(s *Session) error {
	if len(s.History) == 0 {
		return ErrNoHistory
	}

	prev := s.History[len(s.History)-1]
	if _, err := e.Node(prev); err != nil {
		return err
	}
	s.History = s.History[:len(s.History)-1]

	s.Current = prev
	s.Selection = append([]string(nil), s.Answers[prev]...)
	delete(s.Answers, prev)

	if prev == NodePrimaryIntent || prev == NodeUnsureSymptoms {
		s.Category = ""
	}
	return nil
}

// Progress estimates completion as (answered so far + 1) over the
// expected path length for the session's category. The graph's branches
// differ in length, so this is an approximation, not an exact count.
func (e *Engine) Progress(s *Session) (step, total int) {
	total = 5
	if s.Category == CategoryRecreational {
		total = 6
	}
	return len(s.History) + 1, total
}

// NextIsTerminal reports whether advancing with the current selection
// would finish the flow. With an empty selection it reports false.
func (e *Engine) NextIsTerminal(s *Session) bool {
	if len(s.Selection) == 0 {
		return false
	}
	node, err := e.Node(s.Current)
	if err != nil {
		return false
	}
	return node.Next(s.Selection) == NodeTerminal
}

// deriveCategory sets the session category exactly once, when the root or
// the disambiguation question resolves it. It never overwrites a value
// already set; Retreat clears it when the user backs onto a branching
// question.
func (e *Engine) deriveCategory(s *Session, id NodeID, answer []string) {
	if s.Category != "" {
		return
	}
	switch id {
	case NodePrimaryIntent:
		switch first(answer) {
		case "medical":
			s.Category = CategoryMedical
		case "recreational":
			s.Category = CategoryRecreational
		}
	case NodeUnsureSymptoms:
		if first(answer) == "yes" {
			s.Category = CategoryMedical
		} else {
			s.Category = CategoryRecreational
		}
	}
}

func hasOption(node *Node, value string) bool {
	for _, opt := range node.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
