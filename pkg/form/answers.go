package form

import "strings"

// Answers maps question ids to answer values. Value shapes depend on the
// question type: string for single choice and text input, []string (order
// preserving) for multiple choice, and a structured object for address and
// contact questions. Values that crossed a JSON boundary arrive as
// map[string]any / []any; the coercion helpers below accept both shapes.
type Answers map[string]any

// Clone returns a deep copy so sessions can snapshot state safely.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = cloneValue(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = cloneValue(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}

// Address is the structured answer shape for address questions. Field names
// mirror the lookup provider payload so answers round-trip without mapping.
type Address struct {
	FullAddress    string `json:"fullAddress"`
	BuildingNumber string `json:"buildingNumber"`
	Street         string `json:"street"`
	Town           string `json:"town"`
	Postcode       string `json:"postcode"`
}

// Contact is the structured answer shape for contact form questions.
type Contact struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// Complete reports whether every identity field is non-empty after trimming
// and the terms checkbox is ticked.
func (c Contact) Complete() bool {
	for _, field := range []string{c.FirstName, c.LastName, c.Phone, c.Email} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return c.TermsAccepted
}

// StringValue coerces a scalar answer into a string. Non-string values and
// nil yield the empty string.
func StringValue(value any) string {
	s, _ := value.(string)
	return s
}

// ListValue coerces an answer into a list of strings. Scalars wrap into a
// single-element list; []any elements are kept only when they are strings.
func ListValue(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{typed}
	default:
		return nil
	}
}

// AddressValue coerces an answer into an Address. It accepts the struct
// itself or the map shape produced by JSON decoding.
func AddressValue(value any) (Address, bool) {
	switch typed := value.(type) {
	case Address:
		return typed, true
	case *Address:
		if typed == nil {
			return Address{}, false
		}
		return *typed, true
	case map[string]any:
		return Address{
			FullAddress:    StringValue(typed["fullAddress"]),
			BuildingNumber: StringValue(typed["buildingNumber"]),
			Street:         StringValue(typed["street"]),
			Town:           StringValue(typed["town"]),
			Postcode:       StringValue(typed["postcode"]),
		}, true
	default:
		return Address{}, false
	}
}

// ContactValue coerces an answer into a Contact. It accepts the struct itself
// or the map shape produced by JSON decoding.
func ContactValue(value any) (Contact, bool) {
	switch typed := value.(type) {
	case Contact:
		return typed, true
	case *Contact:
		if typed == nil {
			return Contact{}, false
		}
		return *typed, true
	case map[string]any:
		accepted, _ := typed["termsAccepted"].(bool)
		return Contact{
			FirstName:     StringValue(typed["firstName"]),
			LastName:      StringValue(typed["lastName"]),
			Phone:         StringValue(typed["phone"]),
			Email:         StringValue(typed["email"]),
			TermsAccepted: accepted,
		}, true
	default:
		return Contact{}, false
	}
}

// Truthy reports the loose presence check used by the required gate for
// answer shapes without a dedicated predicate.
func Truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case []string:
		return len(typed) > 0
	case []any:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	default:
		return true
	}
}
