// Package survey implements the in-memory editing model for an event's
// survey questions: an ordered question list where each question owns an
// ordered list of answer options. Edits are expressed as Op values and
// applied through Apply, which returns a fresh list and never mutates its
// input. Invalid edits (stale indices, removing below the option minimum)
// are no-ops rather than errors, since they correspond to disallowed UI
// actions such as a double-clicked delete button.
package survey

import (
	"strings"
	"sync"
	"time"

	"github.com/remix-pengkefei/ai-training-admin/internal/model"
)

// MinOptions is the smallest option count a question may have.
const MinOptions = 2

// Op is a single structural edit to the question list.
type Op interface {
	isOp()
}

// AddQuestion appends a blank question with two empty options.
type AddQuestion struct{}

// RemoveQuestion removes the question at Index.
type RemoveQuestion struct {
	Index int
}

// UpdateQuestionText replaces the question text at Index, leaving the
// question's ID and options untouched.
type UpdateQuestionText struct {
	Index int
	Text  string
}

// AddOption appends an empty option to the question at Question.
type AddOption struct {
	Question int
}

// UpdateOption replaces one option string in place.
type UpdateOption struct {
	Question int
	Option   int
	Text     string
}

// RemoveOption removes one option, rejected once only MinOptions remain.
type RemoveOption struct {
	Question int
	Option   int
}

func (AddQuestion) isOp()        {}
func (RemoveQuestion) isOp()     {}
func (UpdateQuestionText) isOp() {}
func (AddOption) isOp()          {}
func (UpdateOption) isOp()       {}
func (RemoveOption) isOp()       {}

var (
	idMu     sync.Mutex
	lastID   int64
	idSource = func() int64 { return time.Now().UnixMilli() }
)

// NextID returns a unique question ID. IDs are millisecond timestamps,
// bumped when two calls land in the same millisecond.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := idSource()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// Apply reduces one edit over the question list and returns the result.
// The input slice is never modified; rejected edits return a copy equal
// to the input.
func Apply(qs []model.SurveyQuestion, op Op) []model.SurveyQuestion {
	out := clone(qs)

	switch o := op.(type) {
	case AddQuestion:
		out = append(out, model.SurveyQuestion{
			ID:      NextID(),
			Options: make([]string, MinOptions),
		})

	case RemoveQuestion:
		if o.Index < 0 || o.Index >= len(out) {
			return out
		}
		out = append(out[:o.Index], out[o.Index+1:]...)

	case UpdateQuestionText:
		if o.Index < 0 || o.Index >= len(out) {
			return out
		}
		out[o.Index].Question = o.Text

	case AddOption:
		if o.Question < 0 || o.Question >= len(out) {
			return out
		}
		out[o.Question].Options = append(out[o.Question].Options, "")

	case UpdateOption:
		if o.Question < 0 || o.Question >= len(out) {
			return out
		}
		opts := out[o.Question].Options
		if o.Option < 0 || o.Option >= len(opts) {
			return out
		}
		opts[o.Option] = o.Text

	case RemoveOption:
		if o.Question < 0 || o.Question >= len(out) {
			return out
		}
		opts := out[o.Question].Options
		if o.Option < 0 || o.Option >= len(opts) {
			return out
		}
		if len(opts) <= MinOptions {
			return out
		}
		out[o.Question].Options = append(opts[:o.Option], opts[o.Option+1:]...)
	}

	return out
}

// FilterSubmittable drops scratch entries before submission: a question
// survives only if its text is non-blank and at least one option is
// non-blank. Half-filled questions are dropped silently, not rejected.
func FilterSubmittable(qs []model.SurveyQuestion) []model.SurveyQuestion {
	out := make([]model.SurveyQuestion, 0, len(qs))
	for _, q := range clone(qs) {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if !hasFilledOption(q.Options) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func hasFilledOption(opts []string) bool {
	for _, opt := range opts {
		if strings.TrimSpace(opt) != "" {
			return true
		}
	}
	return false
}

// clone deep-copies the list so edits never alias the caller's slices.
func clone(qs []model.SurveyQuestion) []model.SurveyQuestion {
	out := make([]model.SurveyQuestion, len(qs))
	for i, q := range qs {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}
