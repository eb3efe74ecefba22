package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"nil", nil, nil},
		{"string wraps", "opt_1", []string{"opt_1"}},
		{"string slice passes through", []string{"a", "b"}, []string{"a", "b"}},
		{"any slice keeps strings only", []any{"a", 2, "b"}, []string{"a", "b"}},
		{"other types yield nil", 42, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, ListValue(tc.value)); diff != "" {
				t.Fatalf("ListValue mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddressValue_AcceptsStructAndJSONShape(t *testing.T) {
	t.Parallel()

	want := Address{FullAddress: "1 Main St, Town", Street: "Main St", Postcode: "AB1 2CD"}

	got, ok := AddressValue(want)
	if !ok || got != want {
		t.Fatalf("AddressValue(struct) = %v, %v", got, ok)
	}

	got, ok = AddressValue(map[string]any{
		"fullAddress": "1 Main St, Town",
		"street":      "Main St",
		"postcode":    "AB1 2CD",
	})
	if !ok || got != want {
		t.Fatalf("AddressValue(map) = %v, %v", got, ok)
	}

	if _, ok := AddressValue("just a string"); ok {
		t.Fatal("AddressValue(string) should not coerce")
	}
}

func TestContactComplete(t *testing.T) {
	t.Parallel()

	full := Contact{FirstName: "Ada", LastName: "Lovelace", Phone: "07", Email: "a@b.c", TermsAccepted: true}
	if !full.Complete() {
		t.Fatal("expected complete contact")
	}

	tests := []struct {
		name   string
		mutate func(*Contact)
	}{
		{"missing first name", func(c *Contact) { c.FirstName = " " }},
		{"missing email", func(c *Contact) { c.Email = "" }},
		{"terms not accepted", func(c *Contact) { c.TermsAccepted = false }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := full
			tc.mutate(&c)
			if c.Complete() {
				t.Fatal("expected incomplete contact")
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"empty list", []string{}, false},
		{"list", []string{"x"}, true},
		{"empty map", map[string]any{}, false},
		{"struct", Address{}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Truthy(tc.value); got != tc.want {
				t.Fatalf("Truthy(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestAnswersClone_IsDeep(t *testing.T) {
	t.Parallel()

	answers := Answers{
		"q_1": []string{"a"},
		"q_2": map[string]any{"town": "London"},
	}
	clone := answers.Clone()

	clone["q_1"].([]string)[0] = "changed"
	clone["q_2"].(map[string]any)["town"] = "Paris"

	if got := answers["q_1"].([]string)[0]; got != "a" {
		t.Fatalf("clone shares slice storage, original became %q", got)
	}
	if got := answers["q_2"].(map[string]any)["town"]; got != "London" {
		t.Fatalf("clone shares map storage, original became %q", got)
	}
}
