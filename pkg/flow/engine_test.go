package flow

import (
	"errors"
	"reflect"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultTree())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// answerAndAdvance selects each value in order and advances once.
func answerAndAdvance(t *testing.T, e *Engine, s *Session, values ...string) bool {
	t.Helper()
	for _, v := range values {
		if err := e.SelectOption(s, v); err != nil {
			t.Fatalf("SelectOption(%q) on %s: %v", v, s.Current, err)
		}
	}
	done, err := e.Advance(s)
	if err != nil {
		t.Fatalf("Advance on %s: %v", s.Current, err)
	}
	return done
}

func TestAdvanceEmptySelectionIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	before := *s

	done, err := e.Advance(s)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got done=%v err=%v", done, err)
	}
	if s.Current != before.Current || len(s.Answers) != 0 || len(s.History) != 0 {
		t.Fatal("session mutated by empty advance")
	}
}

func TestSingleChoiceReplacesSelection(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()

	if err := e.SelectOption(s, "medical"); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectOption(s, "recreational"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Selection, []string{"recreational"}) {
		t.Fatalf("selection = %v, want [recreational]", s.Selection)
	}
}

func TestMultiChoiceTogglesMembership(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical") // now at conditions (multi)

	if err := e.SelectOption(s, "anxiety"); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectOption(s, "insomnia"); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectOption(s, "anxiety"); err != nil { // toggle off
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Selection, []string{"insomnia"}) {
		t.Fatalf("selection = %v, want [insomnia]", s.Selection)
	}
}

func TestSelectionLimitRejectsFourth(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical")
	answerAndAdvance(t, e, s, "anxiety") // now at medical effects, max 3

	for _, v := range []string{"pain relief", "relaxation", "focus"} {
		if err := e.SelectOption(s, v); err != nil {
			t.Fatal(err)
		}
	}

	// Every over-limit attempt is rejected and signals the limit; the
	// selection set never changes.
	for i := 0; i < 2; i++ {
		err := e.SelectOption(s, "sedation")
		var limitErr *SelectionLimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("attempt %d: expected SelectionLimitError, got %v", i+1, err)
		}
		if limitErr.Max != 3 {
			t.Fatalf("limit = %d, want 3", limitErr.Max)
		}
		if len(s.Selection) != 3 {
			t.Fatalf("selection grew to %d", len(s.Selection))
		}
	}

	// Toggling an already-selected value off still works at the limit.
	if err := e.SelectOption(s, "focus"); err != nil {
		t.Fatalf("toggle off at limit: %v", err)
	}
	if len(s.Selection) != 2 {
		t.Fatalf("selection = %v, want 2 values", s.Selection)
	}
}

func TestUnknownOptionRejected(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	err := e.SelectOption(s, "nonsense")
	var optErr *UnknownOptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
}

func TestRetreatRestoresPriorNode(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical")
	answerAndAdvance(t, e, s, "anxiety", "insomnia")

	if s.Current != NodeMedicalEffects {
		t.Fatalf("current = %s", s.Current)
	}
	if err := e.Retreat(s); err != nil {
		t.Fatal(err)
	}
	if s.Current != NodeMedicalConditions {
		t.Fatalf("after retreat current = %s, want %s", s.Current, NodeMedicalConditions)
	}
	if !reflect.DeepEqual(s.Selection, []string{"anxiety", "insomnia"}) {
		t.Fatalf("restored selection = %v", s.Selection)
	}
	if _, ok := s.Answers[NodeMedicalEffects]; ok {
		t.Fatal("answer for the node being left should be removed")
	}
	if _, ok := s.Answers[NodeMedicalConditions]; ok {
		t.Fatal("restored answer should live in the selection, not the answers map")
	}
}

func TestAdvanceRetreatRoundTrips(t *testing.T) {
	e := newTestEngine(t)

	snapshot := func(s *Session) (map[NodeID][]string, []NodeID, NodeID) {
		answers := make(map[NodeID][]string, len(s.Answers))
		for k, v := range s.Answers {
			answers[k] = append([]string(nil), v...)
		}
		return answers, append([]NodeID(nil), s.History...), s.Current
	}

	preState := func() *Session {
		s := NewSession()
		answerAndAdvance(t, e, s, "recreational")
		return s
	}
	wantAnswers, wantHistory, wantCurrent := snapshot(preState())

	// advance();retreat() n times along a single path returns the
	// session to its pre-sequence state (answers map and history
	// identical); the last undone answer survives only as the pending
	// selection.
	steps := [][]string{
		{"euphoria", "relaxation"},
		{"happy"},
		{"daytime"},
	}
	for n := 1; n <= len(steps); n++ {
		s := preState()
		for i := 0; i < n; i++ {
			answerAndAdvance(t, e, s, steps[i]...)
		}
		for i := 0; i < n; i++ {
			if err := e.Retreat(s); err != nil {
				t.Fatalf("n=%d retreat %d: %v", n, i, err)
			}
		}
		gotAnswers, gotHistory, gotCurrent := snapshot(s)
		if !reflect.DeepEqual(gotAnswers, wantAnswers) {
			t.Fatalf("n=%d answers = %v, want %v", n, gotAnswers, wantAnswers)
		}
		if !reflect.DeepEqual(gotHistory, wantHistory) {
			t.Fatalf("n=%d history = %v, want %v", n, gotHistory, wantHistory)
		}
		if gotCurrent != wantCurrent {
			t.Fatalf("n=%d current = %s, want %s", n, gotCurrent, wantCurrent)
		}
		if !reflect.DeepEqual(s.Selection, steps[0]) {
			t.Fatalf("n=%d selection = %v, want %v", n, s.Selection, steps[0])
		}
	}
}

func TestRetreatAtRootIsGuarded(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	if err := e.Retreat(s); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestCategoryDerivation(t *testing.T) {
	tests := []struct {
		name    string
		answers [][]string
		want    Category
	}{
		{"direct medical", [][]string{{"medical"}}, CategoryMedical},
		{"direct recreational", [][]string{{"recreational"}}, CategoryRecreational},
		{"unsure then symptoms", [][]string{{"unsure"}, {"yes"}}, CategoryMedical},
		{"unsure then effects", [][]string{{"unsure"}, {"no"}}, CategoryRecreational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			s := NewSession()
			for _, a := range tt.answers {
				answerAndAdvance(t, e, s, a...)
			}
			if s.Category != tt.want {
				t.Fatalf("category = %q, want %q", s.Category, tt.want)
			}
		})
	}
}

func TestCategoryIdempotentWithinPath(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical")
	answerAndAdvance(t, e, s, "chronic pain")
	answerAndAdvance(t, e, s, "pain relief")
	if s.Category != CategoryMedical {
		t.Fatalf("category changed mid-path: %q", s.Category)
	}
}

func TestRetreatOntoBranchingNodeClearsCategory(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical")
	if s.Category != CategoryMedical {
		t.Fatal("precondition failed")
	}

	if err := e.Retreat(s); err != nil {
		t.Fatal(err)
	}
	if s.Category != "" {
		t.Fatalf("category not cleared on retreat to root: %q", s.Category)
	}

	// Re-answering the branch re-derives cleanly.
	answerAndAdvance(t, e, s, "recreational")
	if s.Category != CategoryRecreational {
		t.Fatalf("category = %q after changing branch", s.Category)
	}
}

func TestProgressEstimates(t *testing.T) {
	e := newTestEngine(t)

	s := NewSession()
	step, total := e.Progress(s)
	if step != 1 || total != 5 {
		t.Fatalf("fresh session progress = %d/%d, want 1/5", step, total)
	}

	answerAndAdvance(t, e, s, "recreational")
	step, total = e.Progress(s)
	if step != 2 || total != 6 {
		t.Fatalf("recreational progress = %d/%d, want 2/6", step, total)
	}

	s2 := NewSession()
	answerAndAdvance(t, e, s2, "medical")
	step, total = e.Progress(s2)
	if step != 2 || total != 5 {
		t.Fatalf("medical progress = %d/%d, want 2/5", step, total)
	}
}

func TestNextIsTerminal(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()
	answerAndAdvance(t, e, s, "medical")
	answerAndAdvance(t, e, s, "anxiety")
	answerAndAdvance(t, e, s, "anti-anxiety")
	answerAndAdvance(t, e, s, AnswerAny)

	if e.NextIsTerminal(s) {
		t.Fatal("empty selection must not report terminal")
	}
	if err := e.SelectOption(s, "low"); err != nil {
		t.Fatal(err)
	}
	if !e.NextIsTerminal(s) {
		t.Fatal("last question with selection should report terminal")
	}
}

func TestFullMedicalWalkReachesTerminal(t *testing.T) {
	e := newTestEngine(t)
	s := NewSession()

	answerAndAdvance(t, e, s, "medical")
	answerAndAdvance(t, e, s, "anxiety", "insomnia")
	answerAndAdvance(t, e, s, "anti-anxiety", "sedation")
	answerAndAdvance(t, e, s, AnswerAny)

	if err := e.SelectOption(s, "low"); err != nil {
		t.Fatal(err)
	}
	done, err := e.Advance(s)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("expected terminal after final question")
	}
}
