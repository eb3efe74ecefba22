// Package testsupport holds shared fixtures for package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// QuoteDefinition builds the canonical two-branch fixture used across
// packages: a property-type question whose answer steers which follow-up
// questions and success page apply.
func QuoteDefinition() form.FormDefinition {
	return form.FormDefinition{
		Title: "Home insulation quote",
		Questions: []form.Question{
			{
				ID:       "q_property",
				Text:     "What type of property do you have?",
				Type:     form.QuestionSingleChoice,
				Required: true,
				Options: []form.Option{
					{ID: "q_property_opt_house", Text: "House"},
					{ID: "q_property_opt_flat", Text: "Flat"},
				},
			},
			{
				ID:   "q_rooms",
				Text: "How many rooms need insulating?",
				Type: form.QuestionSingleChoice,
				Options: []form.Option{
					{ID: "q_rooms_opt_one", Text: "One"},
					{ID: "q_rooms_opt_many", Text: "More than one"},
				},
				Conditions: []form.Condition{
					{ID: "c1", QuestionID: "q_property", Values: []string{"q_property_opt_house"}},
				},
			},
			{
				ID:   "q_floor",
				Text: "Which floor is the flat on?",
				Type: form.QuestionTextInput,
				Conditions: []form.Condition{
					{ID: "c2", QuestionID: "q_property", Values: []string{"q_property_opt_flat"}},
				},
			},
			{
				ID:       "q_contact",
				Text:     "How can we reach you?",
				Type:     form.QuestionContactForm,
				Required: true,
			},
		},
		Settings: form.FormSettings{
			BackgroundColor: "#f4f4f5",
			ButtonColor:     "#0f766e",
			SubmitURL:       "https://example.com/thanks",
			SuccessPages: []form.SuccessPage{
				{
					ID:   "sp_house",
					Name: "House owners",
					URL:  "https://example.com/thanks/house",
					Conditions: []form.Condition{
						{ID: "c3", QuestionID: "q_property", Values: []string{"q_property_opt_house"}},
					},
				},
			},
		},
	}
}

// MustLoadDefinition reads a JSON fixture into a FormDefinition.
func MustLoadDefinition(t *testing.T, path string) form.FormDefinition {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	var def form.FormDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		t.Fatalf("unmarshal definition: %v", err)
	}
	return def
}
