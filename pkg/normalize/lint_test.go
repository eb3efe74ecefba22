package normalize

import (
	"strings"
	"testing"

	"github.com/goliatone/go-quoteform/pkg/form"
)

func TestLint_CleanDefinition(t *testing.T) {
	t.Parallel()

	if issues := Lint(draftDefinition()); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestLint_FindsBrokenReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*form.FormDefinition)
		fragment string
	}{
		{
			name: "unknown question reference",
			mutate: func(def *form.FormDefinition) {
				def.Questions[1].Conditions[0].QuestionID = "ghost"
			},
			fragment: "unknown question",
		},
		{
			name: "forward reference",
			mutate: func(def *form.FormDefinition) {
				def.Questions[0].Conditions = []form.Condition{
					{ID: "cf", QuestionID: "a4f5-uuid-rooms", Values: []string{"yes"}},
				}
			},
			fragment: "appears later",
		},
		{
			name: "self reference",
			mutate: func(def *form.FormDefinition) {
				def.Questions[1].Conditions = []form.Condition{
					{ID: "cs", QuestionID: "a4f5-uuid-rooms", Values: []string{"yes"}},
				}
			},
			fragment: "appears later",
		},
		{
			name: "value is not an option of the source",
			mutate: func(def *form.FormDefinition) {
				def.Questions[1].Conditions[0].Values = []string{"not-an-option"}
			},
			fragment: "not an option",
		},
		{
			name: "success page unknown reference",
			mutate: func(def *form.FormDefinition) {
				def.Settings.SuccessPages[0].Conditions[0].QuestionID = "ghost"
			},
			fragment: "unknown question",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			def := draftDefinition()
			tc.mutate(&def)

			issues := Lint(def)
			if len(issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range issues {
				if strings.Contains(issue.Message, tc.fragment) {
					found = true
				}
			}
			if !found {
				t.Fatalf("no issue mentioning %q in %v", tc.fragment, issues)
			}
		})
	}
}

func TestLint_SuccessPagesSkipOrderingCheck(t *testing.T) {
	t.Parallel()

	// A success page may reference the final question; only questions are
	// subject to the sequence-order rule.
	def := draftDefinition()
	def.Settings.SuccessPages[0].Conditions[0] = form.Condition{
		ID:         "c2",
		QuestionID: "a4f5-uuid-rooms",
		Values:     []string{"three"},
	}

	if issues := Lint(def); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestIssue_String(t *testing.T) {
	t.Parallel()

	withCond := Issue{Entity: "question q_2", ConditionID: "c1", Message: "bad"}
	if got := withCond.String(); got != "question q_2, condition c1: bad" {
		t.Fatalf("String() = %q", got)
	}
	withoutCond := Issue{Entity: "question q_2", Message: "bad"}
	if got := withoutCond.String(); got != "question q_2: bad" {
		t.Fatalf("String() = %q", got)
	}
}
