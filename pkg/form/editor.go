package form

import "github.com/google/uuid"

// Editor helpers mint draft identifiers for entities created in the authoring
// UI. Draft ids are opaque uuids; the normalizer rewrites them into stable
// positional ids before compilation.

// NewQuestion creates a question of the given type with a fresh draft id.
// Choice types start with an empty options slice so the editor can append.
func NewQuestion(text string, kind QuestionType) Question {
	q := Question{
		ID:   uuid.NewString(),
		Text: text,
		Type: kind,
	}
	if kind.IsChoice() {
		q.Options = []Option{}
	}
	return q
}

// NewOption creates an option with a fresh draft id.
func NewOption(text string) Option {
	return Option{ID: uuid.NewString(), Text: text}
}

// NewCondition creates a condition against a source question.
func NewCondition(questionID string, values ...string) Condition {
	return Condition{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Values:     append([]string(nil), values...),
	}
}

// NewSuccessPage creates a success redirect rule with a fresh draft id.
func NewSuccessPage(name, url string) SuccessPage {
	return SuccessPage{ID: uuid.NewString(), Name: name, URL: url}
}

// Clone returns a deep copy of the definition. Edit operations and the
// normalizer work on copies so callers never observe partial mutation.
func (f FormDefinition) Clone() FormDefinition {
	out := f
	out.Questions = cloneQuestions(f.Questions)
	out.Settings.SuccessPages = cloneSuccessPages(f.Settings.SuccessPages)
	return out
}

func cloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		clone := q
		if q.Options != nil {
			clone.Options = append([]Option(nil), q.Options...)
		}
		clone.Conditions = cloneConditions(q.Conditions)
		out[i] = clone
	}
	return out
}

func cloneSuccessPages(pages []SuccessPage) []SuccessPage {
	if pages == nil {
		return nil
	}
	out := make([]SuccessPage, len(pages))
	for i, p := range pages {
		clone := p
		clone.Conditions = cloneConditions(p.Conditions)
		out[i] = clone
	}
	return out
}

func cloneConditions(conditions []Condition) []Condition {
	if conditions == nil {
		return nil
	}
	out := make([]Condition, len(conditions))
	for i, c := range conditions {
		clone := c
		if c.Values != nil {
			clone.Values = append([]string(nil), c.Values...)
		}
		out[i] = clone
	}
	return out
}
