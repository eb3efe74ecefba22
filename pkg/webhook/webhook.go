// Package webhook delivers completed submissions to an external automation
// endpoint. Delivery is best effort: the submitting user is never blocked on
// or shown a delivery failure, failures are only logged.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/form"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Submitter posts submission payloads to the webhook URL configured on a
// form definition.
type Submitter struct {
	client *http.Client
	logger *zap.Logger
}

type config struct {
	client *http.Client
	logger *zap.Logger
}

// Option configures a Submitter.
type Option func(*config)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the logger used to report delivery failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewSubmitter builds a webhook submitter.
func NewSubmitter(opts ...Option) *Submitter {
	cfg := config{
		client: &http.Client{Timeout: defaultTimeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Submitter{client: cfg.client, logger: cfg.logger}
}

// Submit transforms answers into the human-readable payload and posts it to
// the definition's webhook URL. It never returns an error: a definition with
// no webhook URL is a no-op and delivery failures are logged and swallowed.
func (s *Submitter) Submit(ctx context.Context, def *form.FormDefinition, answers form.Answers) {
	if def == nil {
		return
	}
	target := strings.TrimSpace(def.Settings.ZapierWebhookURL)
	if target == "" {
		return
	}

	payload := Transform(def, answers)
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("webhook payload encode failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		s.logger.Warn("webhook request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("webhook delivery failed", zap.String("url", target), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.Warn("webhook delivery rejected",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
		)
	}
}

// Transform converts opaque answers into a payload keyed by question text,
// with option ids replaced by option texts and structured answers flattened
// to readable strings. Answers for questions no longer in the definition are
// carried through under their raw key.
func Transform(def *form.FormDefinition, answers form.Answers) map[string]any {
	payload := make(map[string]any, len(answers))
	if def == nil {
		for key, value := range answers {
			payload[key] = value
		}
		return payload
	}

	for key, value := range answers {
		question, ok := def.QuestionByID(key)
		if !ok {
			payload[key] = value
			continue
		}
		label := question.Text
		if label == "" {
			label = question.ID
		}
		payload[label] = readableValue(question, value)
	}
	return payload
}

func readableValue(question form.Question, value any) any {
	switch question.Type {
	case form.QuestionSingleChoice:
		return optionText(question, form.StringValue(value))
	case form.QuestionMultipleChoice:
		ids := form.ListValue(value)
		texts := make([]string, 0, len(ids))
		for _, id := range ids {
			texts = append(texts, optionText(question, id))
		}
		return strings.Join(texts, ", ")
	case form.QuestionAddress:
		if addr, ok := form.AddressValue(value); ok {
			if addr.FullAddress != "" {
				return addr.FullAddress
			}
			return strings.TrimSpace(fmt.Sprintf("%s %s, %s, %s",
				addr.BuildingNumber, addr.Street, addr.Town, addr.Postcode))
		}
		return form.StringValue(value)
	case form.QuestionContactForm:
		if contact, ok := form.ContactValue(value); ok {
			return map[string]any{
				"firstName":     contact.FirstName,
				"lastName":      contact.LastName,
				"phone":         contact.Phone,
				"email":         contact.Email,
				"termsAccepted": contact.TermsAccepted,
			}
		}
		return value
	default:
		return form.StringValue(value)
	}
}

func optionText(question form.Question, id string) string {
	if opt, ok := question.OptionByID(id); ok && opt.Text != "" {
		return opt.Text
	}
	return id
}
