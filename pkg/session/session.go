// Package session holds the navigation state machine used by the live
// preview. The compiled artifact ships its own implementation of the same
// transitions; keep the two behaviorally identical.
package session

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/visibility"
)

// Option customises a Session before first use.
type Option func(*Session)

// WithAnswers seeds the session with previously persisted answers, e.g. when
// restoring an in-progress fill.
func WithAnswers(answers form.Answers) Option {
	return func(s *Session) {
		s.answers = answers.Clone()
	}
}

// WithEvaluator swaps the visibility evaluator. Tests use this to force
// branching outcomes without building real conditions.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(s *Session) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

// Session tracks a single respondent's position in the dynamically filtered
// question sequence. It owns the answer store exclusively; there is no
// concurrent writer.
type Session struct {
	def       form.FormDefinition
	answers   form.Answers
	evaluator visibility.Evaluator
	current   string
	submitted bool
}

// New starts a session positioned at the first visible question.
func New(def form.FormDefinition, options ...Option) *Session {
	s := &Session{
		def:       def.Clone(),
		answers:   make(form.Answers),
		evaluator: visibility.Func(visibility.Conditions),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.answers == nil {
		s.answers = make(form.Answers)
	}
	s.realign()
	return s
}

// Definition returns the form the session is walking.
func (s *Session) Definition() form.FormDefinition {
	return s.def
}

// Answers returns a snapshot of the current answer store.
func (s *Session) Answers() form.Answers {
	return s.answers.Clone()
}

// Submitted reports whether the session reached the terminal state.
func (s *Session) Submitted() bool {
	return s.submitted
}

// ActiveSequence returns the ordered ids of questions visible under the
// current answers. It is recomputed in full on every call; the result is
// independent of the order answers were given in.
func (s *Session) ActiveSequence() []string {
	active := make([]string, 0, len(s.def.Questions))
	for _, q := range s.def.Questions {
		if s.evaluator.Visible(q.Conditions, q.Logic(), s.answers, s.def.Questions) {
			active = append(active, q.ID)
		}
	}
	return active
}

// Current returns the question the session is positioned at.
func (s *Session) Current() (form.Question, bool) {
	if s.submitted || s.current == "" {
		return form.Question{}, false
	}
	return s.def.QuestionByID(s.current)
}

// CurrentIndex returns the position of the current question in the full
// question list, or -1 when the session is submitted or no question is
// visible.
func (s *Session) CurrentIndex() int {
	if s.submitted || s.current == "" {
		return -1
	}
	for i, q := range s.def.Questions {
		if q.ID == s.current {
			return i
		}
	}
	return -1
}

// Progress reports (1 + position in active sequence) / len(active sequence),
// a float in (0, 1]. A submitted session reports 1; a session with no visible
// questions reports 0.
func (s *Session) Progress() float64 {
	if s.submitted {
		return 1
	}
	active := s.ActiveSequence()
	if len(active) == 0 {
		return 0
	}
	for i, id := range active {
		if id == s.current {
			return float64(i+1) / float64(len(active))
		}
	}
	return 0
}

// SetAnswer records a value for a question and recomputes the active
// sequence. Passing nil clears the stored answer. If the currently displayed
// question drops out of the new active sequence the session jumps to the
// first visible question automatically; this correction is not a
// user-initiated transition.
func (s *Session) SetAnswer(questionID string, value any) {
	if value == nil {
		delete(s.answers, questionID)
	} else {
		s.answers[questionID] = value
	}
	s.realign()
}

// Next advances to the next question in the active sequence, or to the
// terminal state when the current question is the last active one. It is
// blocked while a required question is unsatisfied.
func (s *Session) Next() error {
	if s.submitted {
		return nil
	}
	if current, ok := s.Current(); ok {
		if current.Required && !s.satisfied(current) {
			return fmt.Errorf("session: question %q requires an answer", current.ID)
		}
	}

	active := s.ActiveSequence()
	pos := indexOf(active, s.current)
	if pos < 0 || pos == len(active)-1 {
		s.submitted = true
		s.current = ""
		return nil
	}
	s.current = active[pos+1]
	return nil
}

// Back moves to the previous active question. It is a no-op at the first
// active question and after submission.
func (s *Session) Back() {
	if s.submitted {
		return
	}
	active := s.ActiveSequence()
	pos := indexOf(active, s.current)
	if pos > 0 {
		s.current = active[pos-1]
	}
}

// Reset clears all answers and returns to the initial state. The form
// definition is preserved.
func (s *Session) Reset() {
	s.answers = make(form.Answers)
	s.submitted = false
	s.current = ""
	s.realign()
}

// satisfied implements the required-satisfaction predicate per question
// type.
func (s *Session) satisfied(q form.Question) bool {
	answer, ok := s.answers[q.ID]
	if !ok {
		return false
	}
	switch q.Type {
	case form.QuestionMultipleChoice:
		return len(form.ListValue(answer)) > 0
	case form.QuestionTextInput:
		return strings.TrimSpace(form.StringValue(answer)) != ""
	case form.QuestionContactForm:
		contact, ok := form.ContactValue(answer)
		return ok && contact.Complete()
	default:
		return form.Truthy(answer)
	}
}

// realign re-derives the current position after any answer mutation.
func (s *Session) realign() {
	if s.submitted {
		return
	}
	active := s.ActiveSequence()
	if len(active) == 0 {
		s.current = ""
		return
	}
	if indexOf(active, s.current) < 0 {
		s.current = active[0]
	}
}

func indexOf(ids []string, id string) int {
	if id == "" {
		return -1
	}
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
