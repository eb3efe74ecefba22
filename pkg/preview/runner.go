// Package preview walks a form definition in the terminal the same way the
// compiled artifact walks it in the browser: questions appear and disappear
// as answers change, required questions gate progression, and the final
// answers resolve to the same success redirect.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/lookup"
	"github.com/goliatone/go-quoteform/pkg/redirect"
	"github.com/goliatone/go-quoteform/pkg/session"
)

// Submitter delivers the completed submission. It matches the webhook
// package's Submit signature.
type Submitter interface {
	Submit(ctx context.Context, def *form.FormDefinition, answers form.Answers)
}

// Result captures the outcome of a completed preview walk.
type Result struct {
	Answers     form.Answers
	RedirectURL string
}

// Runner drives an interactive walk through a form definition.
type Runner struct {
	driver    PromptDriver
	addresses lookup.AddressProvider
	submitter Submitter
}

// Option configures a Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithAddressProvider enables postcode lookups for address questions. When
// omitted the runner falls back to free-text address entry.
func WithAddressProvider(provider lookup.AddressProvider) Option {
	return func(r *Runner) {
		r.addresses = provider
	}
}

// WithSubmitter delivers the completed answers when the walk finishes.
func WithSubmitter(submitter Submitter) Option {
	return func(r *Runner) {
		r.submitter = submitter
	}
}

// NewRunner builds a preview runner. The default driver prompts on the
// terminal via survey.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{driver: &surveyDriver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run walks def from the first visible question to submission and returns the
// collected answers together with the resolved redirect URL.
func (r *Runner) Run(ctx context.Context, def form.FormDefinition) (Result, error) {
	if def.Title != "" {
		if err := r.driver.Info(ctx, def.Title); err != nil {
			return Result{}, err
		}
	}

	sess := session.New(def)
	for !sess.Submitted() {
		question, ok := sess.Current()
		if !ok {
			if err := sess.Next(); err != nil {
				return Result{}, fmt.Errorf("preview: %w", err)
			}
			continue
		}

		value, err := r.ask(ctx, question)
		if err != nil {
			return Result{}, err
		}
		sess.SetAnswer(question.ID, value)

		if err := sess.Next(); err != nil {
			if infoErr := r.driver.Info(ctx, err.Error()); infoErr != nil {
				return Result{}, infoErr
			}
		}
	}

	answers := sess.Answers()
	if r.submitter != nil {
		r.submitter.Submit(ctx, &def, answers)
	}

	return Result{
		Answers:     answers,
		RedirectURL: redirect.ForForm(def, answers),
	}, nil
}

func (r *Runner) ask(ctx context.Context, question form.Question) (any, error) {
	switch question.Type {
	case form.QuestionSingleChoice:
		return r.askSingleChoice(ctx, question)
	case form.QuestionMultipleChoice:
		return r.askMultipleChoice(ctx, question)
	case form.QuestionAddress:
		return r.askAddress(ctx, question)
	case form.QuestionContactForm:
		return r.askContact(ctx, question)
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:     question.Text,
			Help:        question.Description,
			Placeholder: question.Placeholder,
		})
	}
}

func (r *Runner) askSingleChoice(ctx context.Context, question form.Question) (any, error) {
	labels := optionLabels(question)
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      question.Text,
		Options:      labels,
		Help:         question.Description,
		DefaultIndex: -1,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(question.Options) {
		return nil, nil
	}
	return question.Options[idx].ID, nil
}

func (r *Runner) askMultipleChoice(ctx context.Context, question form.Question) (any, error) {
	labels := optionLabels(question)
	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message: question.Text,
		Options: labels,
		Help:    question.Description,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(question.Options) {
			ids = append(ids, question.Options[idx].ID)
		}
	}
	return ids, nil
}

func (r *Runner) askAddress(ctx context.Context, question form.Question) (any, error) {
	if r.addresses == nil {
		full, err := r.driver.Input(ctx, InputConfig{
			Message: question.Text,
			Help:    question.Description,
		})
		if err != nil {
			return nil, err
		}
		return form.Address{FullAddress: full}, nil
	}

	postcode, err := r.driver.Input(ctx, InputConfig{
		Message: question.Text + " (postcode)",
		Help:    question.Description,
	})
	if err != nil {
		return nil, err
	}

	candidates, err := r.addresses.Lookup(ctx, postcode)
	if err != nil || len(candidates) == 0 {
		if err != nil {
			if infoErr := r.driver.Info(ctx, "address lookup failed: "+err.Error()); infoErr != nil {
				return nil, infoErr
			}
		}
		full, inputErr := r.driver.Input(ctx, InputConfig{Message: "Enter the address manually"})
		if inputErr != nil {
			return nil, inputErr
		}
		return form.Address{FullAddress: full, Postcode: strings.TrimSpace(postcode)}, nil
	}

	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.FullAddress
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Select your address",
		Options:      labels,
		DefaultIndex: -1,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(candidates) {
		return nil, nil
	}
	return candidates[idx], nil
}

func (r *Runner) askContact(ctx context.Context, question form.Question) (any, error) {
	if err := r.driver.Info(ctx, question.Text); err != nil {
		return nil, err
	}

	var contact form.Contact
	fields := []struct {
		label  string
		target *string
	}{
		{"First name", &contact.FirstName},
		{"Last name", &contact.LastName},
		{"Phone", &contact.Phone},
		{"Email", &contact.Email},
	}
	for _, field := range fields {
		value, err := r.driver.Input(ctx, InputConfig{Message: field.label})
		if err != nil {
			return nil, err
		}
		*field.target = strings.TrimSpace(value)
	}

	accepted, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Accept the terms and conditions?",
	})
	if err != nil {
		return nil, err
	}
	contact.TermsAccepted = accepted
	return contact, nil
}

func optionLabels(question form.Question) []string {
	labels := make([]string, len(question.Options))
	for i, opt := range question.Options {
		labels[i] = opt.Text
	}
	return labels
}
