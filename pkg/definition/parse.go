package definition

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quoteform/pkg/form"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes a JSON or YAML payload, applies the documented defaults for
// missing sections, validates the structure, and sanitizes option icons.
// Malformed-but-decodable payloads (missing settings, nil questions) never
// fail; they are defaulted instead so a stored form always loads.
func Parse(data []byte) (form.FormDefinition, error) {
	if len(data) == 0 {
		return form.FormDefinition{}, errors.New("definition: payload is empty")
	}

	var def form.FormDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		if yamlErr := yaml.Unmarshal(data, &def); yamlErr != nil {
			return form.FormDefinition{}, fmt.Errorf("definition: payload is neither valid JSON nor YAML: %w", err)
		}
	}

	ApplyDefaults(&def)
	if err := Validate(def); err != nil {
		return form.FormDefinition{}, err
	}
	SanitizeIcons(&def)
	return def, nil
}

// ApplyDefaults fills the documented fallbacks for absent fields: an untitled
// form, an empty question list, AND condition logic, and single-choice for
// questions that carry options but no type.
func ApplyDefaults(def *form.FormDefinition) {
	if def == nil {
		return
	}
	if def.Title == "" {
		def.Title = "Untitled form"
	}
	if def.Questions == nil {
		def.Questions = []form.Question{}
	}
	for i := range def.Questions {
		q := &def.Questions[i]
		if q.Type == "" {
			if len(q.Options) > 0 {
				q.Type = form.QuestionSingleChoice
			} else {
				q.Type = form.QuestionTextInput
			}
		}
		if q.ConditionLogic == "" {
			q.ConditionLogic = form.LogicAnd
		}
	}
	for i := range def.Settings.SuccessPages {
		if def.Settings.SuccessPages[i].ConditionLogic == "" {
			def.Settings.SuccessPages[i].ConditionLogic = form.LogicAnd
		}
	}
}

// Validate checks structural invariants: ids and texts present, known types,
// options present exactly on choice questions, and intact id uniqueness.
func Validate(def form.FormDefinition) error {
	if err := validate.Struct(def); err != nil {
		return fmt.Errorf("definition: invalid definition: %w", err)
	}

	seen := make(map[string]struct{}, len(def.Questions))
	for _, q := range def.Questions {
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("definition: duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		if !q.Type.Valid() {
			return fmt.Errorf("definition: question %q has unknown type %q", q.ID, q.Type)
		}
		if q.Type.IsChoice() && len(q.Options) == 0 {
			return fmt.Errorf("definition: choice question %q has no options", q.ID)
		}
		if !q.Type.IsChoice() && len(q.Options) > 0 {
			return fmt.Errorf("definition: question %q of type %s cannot carry options", q.ID, q.Type)
		}

		optSeen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := optSeen[opt.ID]; dup {
				return fmt.Errorf("definition: question %q has duplicate option id %q", q.ID, opt.ID)
			}
			optSeen[opt.ID] = struct{}{}
		}
	}
	return nil
}
