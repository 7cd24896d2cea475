// Package prompttest provides a scripted prompt.Interface for tests.
//
// A Script is created with the full sequence of answers the simulated user
// gives, in order. Text and Select answers are strings, MultiSelect answers
// are []string, and Confirm answers are bools. Answering a validated text
// question with input that fails validation consumes the answer and moves on
// to the next one, mirroring a real re-prompt loop.
package prompttest

import (
	"fmt"
	"testing"

	"github.com/hubforge/hubctl/pkg/prompt"
)

// Script replays a fixed sequence of user answers.
type Script struct {
	t        *testing.T
	answers  []any
	next     int
	messages []string
}

// NewScript creates a Script that answers questions from the given sequence.
func NewScript(t *testing.T, answers ...any) *Script {
	t.Helper()
	return &Script{t: t, answers: answers}
}

// Messages returns the question messages asked so far, in order.
func (s *Script) Messages() []string {
	return s.messages
}

// Remaining returns the number of unconsumed answers. Tests normally assert
// this is zero once the flow under test finishes.
func (s *Script) Remaining() int {
	return len(s.answers) - s.next
}

func (s *Script) pop(message string) any {
	s.t.Helper()
	s.messages = append(s.messages, message)
	if s.next >= len(s.answers) {
		s.t.Fatalf("script exhausted: unexpected question %q", message)
	}
	answer := s.answers[s.next]
	s.next++
	return answer
}

// Text pops string answers until one passes validation.
func (s *Script) Text(opts prompt.TextOptions) (string, error) {
	s.t.Helper()
	for {
		answer, ok := s.pop(opts.Message).(string)
		if !ok {
			s.t.Fatalf("question %q expects a string answer", opts.Message)
		}
		if opts.Help != "" && answer == prompt.HelpSentinel {
			continue
		}
		if answer == "" && opts.Default != "" {
			answer = opts.Default
		}
		if opts.Validate != nil {
			if err := opts.Validate(answer); err != nil {
				continue
			}
		}
		return answer, nil
	}
}

// Select pops a string answer and checks it is one of the offered options.
// An empty answer resolves to the default option.
func (s *Script) Select(opts prompt.SelectOptions) (string, error) {
	s.t.Helper()
	answer, ok := s.pop(opts.Message).(string)
	if !ok {
		s.t.Fatalf("question %q expects a string answer", opts.Message)
	}
	if answer == "" {
		if opts.Default != "" {
			return opts.Default, nil
		}
		return "", fmt.Errorf("no default for select %q", opts.Message)
	}
	for _, opt := range opts.Options {
		if opt == answer {
			return answer, nil
		}
	}
	s.t.Fatalf("answer %q is not an option of select %q (options: %v)", answer, opts.Message, opts.Options)
	return "", nil
}

// MultiSelect pops []string answers until one passes validation.
func (s *Script) MultiSelect(opts prompt.MultiSelectOptions) ([]string, error) {
	s.t.Helper()
	for {
		answer, ok := s.pop(opts.Message).([]string)
		if !ok {
			s.t.Fatalf("question %q expects a []string answer", opts.Message)
		}
		if opts.Validate != nil {
			if err := opts.Validate(answer); err != nil {
				continue
			}
		}
		return answer, nil
	}
}

// Confirm pops a bool answer.
func (s *Script) Confirm(opts prompt.ConfirmOptions) (bool, error) {
	s.t.Helper()
	answer, ok := s.pop(opts.Message).(bool)
	if !ok {
		s.t.Fatalf("question %q expects a bool answer", opts.Message)
	}
	return answer, nil
}
