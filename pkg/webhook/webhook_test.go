package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/testsupport"
)

func TestTransform_HumanReadablePayload(t *testing.T) {
	t.Parallel()

	def := testsupport.QuoteDefinition()
	answers := form.Answers{
		"q_property": "q_property_opt_house",
		"q_contact": form.Contact{
			FirstName: "Ada", LastName: "Lovelace", Phone: "07", Email: "a@b.c", TermsAccepted: true,
		},
		"orphaned": "kept as-is",
	}

	got := Transform(&def, answers)

	want := map[string]any{
		"What type of property do you have?": "House",
		"How can we reach you?": map[string]any{
			"firstName":     "Ada",
			"lastName":      "Lovelace",
			"phone":         "07",
			"email":         "a@b.c",
			"termsAccepted": true,
		},
		"orphaned": "kept as-is",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_MultipleChoiceJoinsOptionTexts(t *testing.T) {
	t.Parallel()

	def := form.FormDefinition{
		Questions: []form.Question{
			{
				ID: "q_1", Text: "Extras", Type: form.QuestionMultipleChoice,
				Options: []form.Option{
					{ID: "q_1_opt_1", Text: "Loft"},
					{ID: "q_1_opt_2", Text: "Cavity wall"},
				},
			},
		},
	}
	got := Transform(&def, form.Answers{"q_1": []string{"q_1_opt_1", "q_1_opt_2"}})

	if got["Extras"] != "Loft, Cavity wall" {
		t.Fatalf("payload = %v", got)
	}
}

func TestTransform_AddressUsesFullAddress(t *testing.T) {
	t.Parallel()

	def := form.FormDefinition{
		Questions: []form.Question{
			{ID: "q_addr", Text: "Your address", Type: form.QuestionAddress},
		},
	}
	got := Transform(&def, form.Answers{
		"q_addr": form.Address{FullAddress: "1 Main St, Town, AB1 2CD"},
	})

	if got["Your address"] != "1 Main St, Town, AB1 2CD" {
		t.Fatalf("payload = %v", got)
	}
}

func TestSubmit_PostsJSONToConfiguredURL(t *testing.T) {
	t.Parallel()

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	def := testsupport.QuoteDefinition()
	def.Settings.ZapierWebhookURL = server.URL

	submitter := NewSubmitter(WithHTTPClient(server.Client()))
	submitter.Submit(context.Background(), &def, form.Answers{"q_property": "q_property_opt_house"})

	if received["What type of property do you have?"] != "House" {
		t.Fatalf("webhook received %v", received)
	}
}

func TestSubmit_NoURLIsNoOp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(server.Close)

	def := testsupport.QuoteDefinition()
	def.Settings.ZapierWebhookURL = ""

	NewSubmitter(WithHTTPClient(server.Client())).Submit(context.Background(), &def, form.Answers{})

	if calls.Load() != 0 {
		t.Fatal("submitter must not call anything without a webhook URL")
	}
}

func TestSubmit_DeliveryFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	def := testsupport.QuoteDefinition()
	def.Settings.ZapierWebhookURL = server.URL

	// Must not panic or surface the failure to the caller.
	NewSubmitter(WithHTTPClient(server.Client())).Submit(context.Background(), &def, form.Answers{})
}
