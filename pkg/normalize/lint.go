package normalize

import (
	"fmt"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// Issue describes one reference problem found in a definition. Issues are
// reported to the author at export time; at fill time the same situations
// silently evaluate false so respondents are never blocked.
type Issue struct {
	// Entity identifies the owner: "question <id>" or "success page <id>".
	Entity string
	// ConditionID is the offending condition, when applicable.
	ConditionID string
	Message     string
}

func (i Issue) String() string {
	if i.ConditionID == "" {
		return fmt.Sprintf("%s: %s", i.Entity, i.Message)
	}
	return fmt.Sprintf("%s, condition %s: %s", i.Entity, i.ConditionID, i.Message)
}

// Lint walks the reference graph and reports dangling and forward condition
// references plus option values that do not exist on their source question.
// A non-empty result does not prevent export; it is advisory.
func Lint(def form.FormDefinition) []Issue {
	var issues []Issue

	position := make(map[string]int, len(def.Questions))
	for i, q := range def.Questions {
		position[q.ID] = i
	}

	for i, q := range def.Questions {
		entity := fmt.Sprintf("question %s", q.ID)
		for _, cond := range q.Conditions {
			issues = append(issues, lintCondition(def, cond, entity, &i, position)...)
		}
	}
	for _, page := range def.Settings.SuccessPages {
		entity := fmt.Sprintf("success page %s", page.ID)
		for _, cond := range page.Conditions {
			issues = append(issues, lintCondition(def, cond, entity, nil, position)...)
		}
	}
	return issues
}

// lintCondition checks one condition. ownerPos is the owning question's
// position when the owner is a question; success pages may reference any
// question so they skip the ordering check.
func lintCondition(def form.FormDefinition, cond form.Condition, entity string, ownerPos *int, position map[string]int) []Issue {
	var issues []Issue

	sourcePos, ok := position[cond.QuestionID]
	if !ok {
		issues = append(issues, Issue{
			Entity:      entity,
			ConditionID: cond.ID,
			Message:     fmt.Sprintf("references unknown question %q; it will never be satisfied", cond.QuestionID),
		})
		return issues
	}
	if ownerPos != nil && sourcePos >= *ownerPos {
		issues = append(issues, Issue{
			Entity:      entity,
			ConditionID: cond.ID,
			Message:     fmt.Sprintf("references question %q which appears later in the sequence; the condition can never be satisfied", cond.QuestionID),
		})
	}

	source := def.Questions[sourcePos]
	if !source.Type.IsChoice() {
		return issues
	}
	for _, value := range cond.Values {
		if _, ok := source.OptionByID(value); !ok {
			issues = append(issues, Issue{
				Entity:      entity,
				ConditionID: cond.ID,
				Message:     fmt.Sprintf("value %q is not an option of question %q", value, cond.QuestionID),
			})
		}
	}
	return issues
}
