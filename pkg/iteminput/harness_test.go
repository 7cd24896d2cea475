package iteminput

import (
	"testing"

	"github.com/hubforge/hubctl/pkg/prompt"
)

// fakeUI replays scripted answers and records every select it was shown, so
// tests can assert which menu entries were offered.
type fakeUI struct {
	t       *testing.T
	answers []any
	next    int
	selects []prompt.SelectOptions
	multis  []prompt.MultiSelectOptions
}

func newFakeUI(t *testing.T, answers ...any) *fakeUI {
	t.Helper()
	return &fakeUI{t: t, answers: answers}
}

func (u *fakeUI) remaining() int {
	return len(u.answers) - u.next
}

func (u *fakeUI) pop(message string) any {
	u.t.Helper()
	if u.next >= len(u.answers) {
		u.t.Fatalf("script exhausted: unexpected question %q", message)
	}
	answer := u.answers[u.next]
	u.next++
	return answer
}

func (u *fakeUI) Text(opts prompt.TextOptions) (string, error) {
	u.t.Helper()
	for {
		answer, ok := u.pop(opts.Message).(string)
		if !ok {
			u.t.Fatalf("question %q expects a string answer", opts.Message)
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

func (u *fakeUI) Select(opts prompt.SelectOptions) (string, error) {
	u.t.Helper()
	u.selects = append(u.selects, opts)
	answer, ok := u.pop(opts.Message).(string)
	if !ok {
		u.t.Fatalf("question %q expects a string answer", opts.Message)
	}
	if answer == "" {
		answer = opts.Default
	}
	for _, opt := range opts.Options {
		if opt == answer {
			return answer, nil
		}
	}
	u.t.Fatalf("answer %q is not an option of select %q (options: %v)", answer, opts.Message, opts.Options)
	return "", nil
}

func (u *fakeUI) MultiSelect(opts prompt.MultiSelectOptions) ([]string, error) {
	u.t.Helper()
	u.multis = append(u.multis, opts)
	for {
		answer, ok := u.pop(opts.Message).([]string)
		if !ok {
			u.t.Fatalf("question %q expects a []string answer", opts.Message)
		}
		if opts.Validate != nil {
			if err := opts.Validate(answer); err != nil {
				continue
			}
		}
		return answer, nil
	}
}

func (u *fakeUI) Confirm(opts prompt.ConfirmOptions) (bool, error) {
	u.t.Helper()
	answer, ok := u.pop(opts.Message).(bool)
	if !ok {
		u.t.Fatalf("question %q expects a bool answer", opts.Message)
	}
	return answer, nil
}

// lastSelect returns the most recent select shown, failing when none was.
func (u *fakeUI) lastSelect() prompt.SelectOptions {
	u.t.Helper()
	if len(u.selects) == 0 {
		u.t.Fatal("no select was shown")
	}
	return u.selects[len(u.selects)-1]
}

func containsOption(opts prompt.SelectOptions, option string) bool {
	for _, opt := range opts.Options {
		if opt == option {
			return true
		}
	}
	return false
}
