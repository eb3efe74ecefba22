package form

// QuestionType enumerates the input kinds a quote form can present.
type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTextInput      QuestionType = "text_input"
	QuestionAddress        QuestionType = "address"
	QuestionContactForm    QuestionType = "contact_form"
)

// IsChoice reports whether the type carries an options list.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

// Valid reports whether the type is one of the supported kinds.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultipleChoice, QuestionTextInput,
		QuestionAddress, QuestionContactForm:
		return true
	}
	return false
}

// ConditionLogic selects how multiple conditions combine.
type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

// Condition is a single testable rule referencing a prior question and the
// values that satisfy it. Values hold option ids when the source question is a
// choice type, or a single literal string when the source is text input.
type Condition struct {
	ID         string   `json:"id" yaml:"id"`
	QuestionID string   `json:"questionId" yaml:"questionId" validate:"required"`
	Values     []string `json:"values" yaml:"values"`
}

// Option is a selectable answer for choice questions. Icon carries either a
// URL or inline decorative markup; the definition loader sanitizes it.
type Option struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Text        string `json:"text" yaml:"text" validate:"required"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Question models one step of the questionnaire. Options is present iff the
// type is a choice type. Conditions reference questions earlier in the
// sequence; forward references are tolerated but never satisfiable.
type Question struct {
	ID             string         `json:"id" yaml:"id" validate:"required"`
	Text           string         `json:"text" yaml:"text" validate:"required"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	Type           QuestionType   `json:"type" yaml:"type"`
	Required       bool           `json:"required" yaml:"required"`
	Placeholder    string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	PostcodeAPI    string         `json:"postcodeApi,omitempty" yaml:"postcodeApi,omitempty"`
	Options        []Option       `json:"options,omitempty" yaml:"options,omitempty" validate:"omitempty,dive"`
	Conditions     []Condition    `json:"conditions,omitempty" yaml:"conditions,omitempty" validate:"omitempty,dive"`
	ConditionLogic ConditionLogic `json:"conditionLogic,omitempty" yaml:"conditionLogic,omitempty"`
}

// Logic returns the effective condition logic, defaulting to AND.
func (q Question) Logic() ConditionLogic {
	if q.ConditionLogic == LogicOr {
		return LogicOr
	}
	return LogicAnd
}

// SuccessPage is one entry of the ordered post-submission redirect rules.
type SuccessPage struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	URL            string         `json:"url" yaml:"url" validate:"required"`
	Conditions     []Condition    `json:"conditions,omitempty" yaml:"conditions,omitempty" validate:"omitempty,dive"`
	ConditionLogic ConditionLogic `json:"conditionLogic,omitempty" yaml:"conditionLogic,omitempty"`
}

// Logic returns the effective condition logic, defaulting to AND.
func (p SuccessPage) Logic() ConditionLogic {
	if p.ConditionLogic == LogicOr {
		return LogicOr
	}
	return LogicAnd
}

// FormSettings carries styling, submission, and lookup configuration.
type FormSettings struct {
	BackgroundColor  string        `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	ButtonColor      string        `json:"buttonColor,omitempty" yaml:"buttonColor,omitempty"`
	SubmitURL        string        `json:"submitUrl,omitempty" yaml:"submitUrl,omitempty"`
	ZapierWebhookURL string        `json:"zapierWebhookUrl,omitempty" yaml:"zapierWebhookUrl,omitempty"`
	PostcodeAPIKey   string        `json:"postcodeApiKey,omitempty" yaml:"postcodeApiKey,omitempty"`
	SuccessPages     []SuccessPage `json:"successPages,omitempty" yaml:"successPages,omitempty" validate:"omitempty,dive"`
}

// FormDefinition is the authoring model for a quote form. It is handed to the
// module as an opaque blob by the persistence collaborator and is only mutated
// through explicit edit operations.
type FormDefinition struct {
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Questions   []Question   `json:"questions" yaml:"questions" validate:"omitempty,dive"`
	Settings    FormSettings `json:"settings" yaml:"settings"`
}

// QuestionByID returns the question with the given id, if present.
func (f FormDefinition) QuestionByID(id string) (Question, bool) {
	return QuestionByID(f.Questions, id)
}

// QuestionByID scans an ordered question list for the given id.
func QuestionByID(questions []Question, id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// OptionByID scans a question's options for the given id.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}
