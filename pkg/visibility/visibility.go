// Package visibility implements the branching predicate shared by the live
// preview and, re-expressed in the compiled artifact's script, by exported
// forms. The algorithm is deliberately small and fully specified so both
// runtimes can implement it independently and agree bit for bit.
package visibility

import (
	"fmt"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// Evaluator decides whether a condition set is satisfied by the current
// answers. Sessions accept a custom implementation for testing.
type Evaluator interface {
	Visible(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question) bool
}

// Func adapts a function into an Evaluator.
type Func func(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question) bool

// Visible delegates to the underlying function.
func (fn Func) Visible(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question) bool {
	return fn(conds, logic, answers, questions)
}

// Question reports whether a question applies given the current answers,
// using the strict per-condition rules: choice sources match on a non-empty
// intersection with the stored selection, text sources on exact string
// equality, and any other source type never matches.
func Question(q form.Question, answers form.Answers, questions []form.Question) bool {
	return Conditions(q.Conditions, q.Logic(), answers, questions)
}

// Conditions combines per-condition results under the given logic. An empty
// condition list imposes no constraint and is always true.
func Conditions(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question) bool {
	return combine(conds, logic, answers, questions, conditionMet)
}

// Page reports whether a success page's rule set matches. It uses the
// relaxed per-condition rules, which are intentionally more permissive than
// the question variant: object and array answers match when any stringified
// member appears in the condition values, and scalar answers match on plain
// membership. The two variants are kept distinct on purpose.
func Page(p form.SuccessPage, answers form.Answers, questions []form.Question) bool {
	return Matches(p.Conditions, p.Logic(), answers, questions)
}

// Matches is the relaxed counterpart of Conditions used for success pages.
func Matches(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question) bool {
	return combine(conds, logic, answers, questions, conditionMatches)
}

type predicate func(cond form.Condition, answers form.Answers, questions []form.Question) bool

func combine(conds []form.Condition, logic form.ConditionLogic, answers form.Answers, questions []form.Question, met predicate) bool {
	if len(conds) == 0 {
		return true
	}
	if logic == form.LogicOr {
		for _, cond := range conds {
			if met(cond, answers, questions) {
				return true
			}
		}
		return false
	}
	for _, cond := range conds {
		if !met(cond, answers, questions) {
			return false
		}
	}
	return true
}

// conditionMet is the strict per-condition check. Unresolvable references and
// absent answers evaluate false so the owning question hides instead of
// erroring.
func conditionMet(cond form.Condition, answers form.Answers, questions []form.Question) bool {
	source, ok := form.QuestionByID(questions, cond.QuestionID)
	if !ok {
		return false
	}
	answer, ok := answers[cond.QuestionID]
	if !ok {
		return false
	}

	switch source.Type {
	case form.QuestionSingleChoice, form.QuestionMultipleChoice:
		// "any match": one intersecting value satisfies the condition, even
		// for single-choice sources where only one value can be stored.
		selected := form.ListValue(answer)
		for _, want := range cond.Values {
			for _, got := range selected {
				if want == got {
					return true
				}
			}
		}
		return false
	case form.QuestionTextInput:
		if len(cond.Values) == 0 {
			return false
		}
		// Exact match: case-sensitive, no trimming.
		return cond.Values[0] == form.StringValue(answer)
	default:
		// Address and contact answers are not valid sources for question
		// visibility; success pages use the relaxed branch instead.
		return false
	}
}

// conditionMatches is the relaxed per-condition check used for success pages.
// The source question's type is ignored; matching keys off the stored answer
// shape alone.
func conditionMatches(cond form.Condition, answers form.Answers, questions []form.Question) bool {
	if _, ok := form.QuestionByID(questions, cond.QuestionID); !ok {
		return false
	}
	answer, ok := answers[cond.QuestionID]
	if !ok {
		return false
	}

	switch typed := answer.(type) {
	case form.Address:
		return anyMemberMatches(cond.Values, typed.FullAddress, typed.BuildingNumber, typed.Street, typed.Town, typed.Postcode)
	case form.Contact:
		return anyMemberMatches(cond.Values, typed.FirstName, typed.LastName, typed.Phone, typed.Email, stringify(typed.TermsAccepted))
	case map[string]any:
		for _, item := range typed {
			if containsString(cond.Values, stringify(item)) {
				return true
			}
		}
		return false
	case []any:
		for _, item := range typed {
			if containsString(cond.Values, stringify(item)) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range typed {
			if containsString(cond.Values, item) {
				return true
			}
		}
		return false
	default:
		return containsString(cond.Values, stringify(answer))
	}
}

func anyMemberMatches(values []string, members ...string) bool {
	for _, member := range members {
		if containsString(values, member) {
			return true
		}
	}
	return false
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
