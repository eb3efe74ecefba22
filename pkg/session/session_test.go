package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/testsupport"
)

func branchingDefinition() form.FormDefinition {
	return testsupport.QuoteDefinition()
}

func TestNew_StartsAtFirstVisibleQuestion(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())

	current, ok := sess.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	if current.ID != "q_property" {
		t.Fatalf("expected q_property, got %q", current.ID)
	}

	want := []string{"q_property", "q_contact"}
	if diff := cmp.Diff(want, sess.ActiveSequence()); diff != "" {
		t.Fatalf("active sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSetAnswer_ExpandsAndContractsSequence(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())

	sess.SetAnswer("q_property", "q_property_opt_house")
	want := []string{"q_property", "q_rooms", "q_contact"}
	if diff := cmp.Diff(want, sess.ActiveSequence()); diff != "" {
		t.Fatalf("active sequence mismatch (-want +got):\n%s", diff)
	}

	// Switching the branch swaps the follow-up question.
	sess.SetAnswer("q_property", "q_property_opt_flat")
	want = []string{"q_property", "q_floor", "q_contact"}
	if diff := cmp.Diff(want, sess.ActiveSequence()); diff != "" {
		t.Fatalf("active sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSetAnswer_RealignsWhenCurrentDisappears(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())
	sess.SetAnswer("q_property", "q_property_opt_house")
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}

	current, _ := sess.Current()
	if current.ID != "q_rooms" {
		t.Fatalf("expected to be on q_rooms, got %q", current.ID)
	}

	// Changing the earlier answer hides q_rooms; the session must jump to
	// the first visible question rather than point at a hidden one.
	sess.SetAnswer("q_property", "q_property_opt_flat")
	current, ok := sess.Current()
	if !ok {
		t.Fatal("expected a current question after realign")
	}
	if current.ID != "q_property" {
		t.Fatalf("expected realign to q_property, got %q", current.ID)
	}
}

func TestNext_BlocksOnUnsatisfiedRequired(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())

	if err := sess.Next(); err == nil {
		t.Fatal("expected required question to block Next")
	}

	current, _ := sess.Current()
	if current.ID != "q_property" {
		t.Fatalf("session must not move past the gate, got %q", current.ID)
	}

	sess.SetAnswer("q_property", "q_property_opt_house")
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() after answering = %v", err)
	}
}

func TestNext_RequiredSatisfactionPerType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		qtype     form.QuestionType
		answer    any
		satisfied bool
	}{
		{"multiple choice empty list", form.QuestionMultipleChoice, []string{}, false},
		{"multiple choice one selection", form.QuestionMultipleChoice, []string{"a"}, true},
		{"text whitespace only", form.QuestionTextInput, "   ", false},
		{"text trimmed non-empty", form.QuestionTextInput, " hi ", true},
		{"contact incomplete", form.QuestionContactForm, form.Contact{FirstName: "Ada"}, false},
		{
			"contact complete",
			form.QuestionContactForm,
			form.Contact{FirstName: "Ada", LastName: "Lovelace", Phone: "07", Email: "a@b.c", TermsAccepted: true},
			true,
		},
		{"single choice selection", form.QuestionSingleChoice, "opt", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			def := form.FormDefinition{
				Questions: []form.Question{
					{ID: "q_only", Text: "Only", Type: tc.qtype, Required: true},
				},
			}
			sess := New(def)
			sess.SetAnswer("q_only", tc.answer)
			err := sess.Next()
			if tc.satisfied && err != nil {
				t.Fatalf("Next() = %v, want nil", err)
			}
			if !tc.satisfied && err == nil {
				t.Fatal("Next() = nil, want required error")
			}
		})
	}
}

func TestNext_LastQuestionSubmits(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())
	sess.SetAnswer("q_property", "q_property_opt_flat")
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}
	if err := sess.Next(); err != nil { // q_floor is optional
		t.Fatalf("Next() = %v", err)
	}
	sess.SetAnswer("q_contact", form.Contact{
		FirstName: "Ada", LastName: "Lovelace", Phone: "07", Email: "a@b.c", TermsAccepted: true,
	})
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}

	if !sess.Submitted() {
		t.Fatal("expected submitted state after the last question")
	}
	if got := sess.Progress(); got != 1 {
		t.Fatalf("Progress() = %v, want 1", got)
	}
	if _, ok := sess.Current(); ok {
		t.Fatal("submitted session must not expose a current question")
	}
}

func TestBack_NoOpAtFirstQuestion(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())
	sess.Back()
	current, _ := sess.Current()
	if current.ID != "q_property" {
		t.Fatalf("Back at first question moved to %q", current.ID)
	}

	sess.SetAnswer("q_property", "q_property_opt_house")
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}
	sess.Back()
	current, _ = sess.Current()
	if current.ID != "q_property" {
		t.Fatalf("Back should return to q_property, got %q", current.ID)
	}
}

func TestProgress_MonotonicOverActiveSequence(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())
	sess.SetAnswer("q_property", "q_property_opt_house")

	// Three active questions: q_property, q_rooms, q_contact.
	if got, want := sess.Progress(), 1.0/3.0; got != want {
		t.Fatalf("Progress() = %v, want %v", got, want)
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}
	if got, want := sess.Progress(), 2.0/3.0; got != want {
		t.Fatalf("Progress() = %v, want %v", got, want)
	}
}

func TestProgress_EmptyForm(t *testing.T) {
	t.Parallel()

	sess := New(form.FormDefinition{})
	if got := sess.Progress(); got != 0 {
		t.Fatalf("Progress() = %v, want 0", got)
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}
	if !sess.Submitted() {
		t.Fatal("advancing an empty form must submit")
	}
}

func TestReset_ClearsAnswersAndState(t *testing.T) {
	t.Parallel()

	sess := New(branchingDefinition())
	sess.SetAnswer("q_property", "q_property_opt_house")
	if err := sess.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}

	sess.Reset()

	if len(sess.Answers()) != 0 {
		t.Fatalf("expected empty answers, got %v", sess.Answers())
	}
	current, ok := sess.Current()
	if !ok || current.ID != "q_property" {
		t.Fatalf("expected reset to q_property, got %q (ok=%v)", current.ID, ok)
	}
	if sess.Submitted() {
		t.Fatal("reset session must not be submitted")
	}
}

func TestWithAnswers_SeedsAndCopies(t *testing.T) {
	t.Parallel()

	seed := form.Answers{"q_property": "q_property_opt_house"}
	sess := New(branchingDefinition(), WithAnswers(seed))

	want := []string{"q_property", "q_rooms", "q_contact"}
	if diff := cmp.Diff(want, sess.ActiveSequence()); diff != "" {
		t.Fatalf("active sequence mismatch (-want +got):\n%s", diff)
	}

	// Mutating the seed after construction must not leak into the session.
	seed["q_property"] = "q_property_opt_flat"
	if diff := cmp.Diff(want, sess.ActiveSequence()); diff != "" {
		t.Fatalf("session shares the caller's answer map (-want +got):\n%s", diff)
	}
}
