// Package prompt provides the terminal question primitives used by the
// interactive item-input framework.
//
// The package is split in two layers. Interface is the narrow terminal
// collaborator: single-line text input, single select, multi select, and
// confirm. Prompter is the pterm-backed implementation of Interface. On top
// of that, the Ask functions adapt the raw primitives into typed questions
// (string, integer, number, boolean) with default values, validation loops,
// and inline help triggered by entering "?".
//
// # Example Usage
//
//	ui := prompt.NewPrompter(nil)
//
//	name, err := prompt.AskString(ui, prompt.StringOptions{
//		Message:  "Location name",
//		Validate: validation.Required(),
//	})
//
//	count, err := prompt.AskInteger(ui, prompt.IntegerOptions{
//		Message: "Retry count",
//		Min:     ptr(int64(0)),
//	})
//
// Tests drive the Ask functions through the scripted double in the
// prompttest subpackage instead of a real terminal.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hubforge/hubctl/pkg/validation"
)

// HelpSentinel is the input that triggers inline help when a question
// carries help text.
const HelpSentinel = "?"

// TextOptions configures a single-line text question.
type TextOptions struct {
	Message string
	Default string
	// Validate is applied to each attempt; the implementation re-prompts
	// until it passes.
	Validate validation.Func
	// Help is printed when the user enters the help sentinel.
	Help string
}

// SelectOptions configures a single-select question.
type SelectOptions struct {
	Message string
	Options []string
	Default string
}

// MultiSelectOptions configures a multi-select (checkbox) question.
type MultiSelectOptions struct {
	Message string
	Options []string
	// Checked lists the options pre-selected when the question is shown.
	Checked []string
	// Validate is applied to the full selection; the implementation
	// re-prompts until it passes.
	Validate func(selected []string) error
}

// ConfirmOptions configures a yes/no question.
type ConfirmOptions struct {
	Message string
	Default bool
}

// Interface is the terminal collaborator the item-input framework depends on.
// Implementations must keep re-prompting until Validate passes.
type Interface interface {
	Text(opts TextOptions) (string, error)
	Select(opts SelectOptions) (string, error)
	MultiSelect(opts MultiSelectOptions) ([]string, error)
	Confirm(opts ConfirmOptions) (bool, error)
}

// StringOptions configures AskString.
type StringOptions struct {
	Message  string
	Default  string
	Validate validation.Func
	Help     string
}

// AskString asks for a free-form string.
func AskString(ui Interface, opts StringOptions) (string, error) {
	return ui.Text(TextOptions{
		Message:  opts.Message,
		Default:  opts.Default,
		Validate: opts.Validate,
		Help:     opts.Help,
	})
}

// IntegerOptions configures AskInteger.
type IntegerOptions struct {
	Message string
	Default *int64
	Min     *int64
	Max     *int64
	Help    string
}

// AskInteger asks for a base-10 integer, optionally bounded.
func AskInteger(ui Interface, opts IntegerOptions) (int64, error) {
	def := ""
	if opts.Default != nil {
		def = strconv.FormatInt(*opts.Default, 10)
	}
	answer, err := ui.Text(TextOptions{
		Message:  opts.Message,
		Default:  def,
		Validate: validation.IntegerRange(opts.Min, opts.Max),
		Help:     opts.Help,
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer input: %w", err)
	}
	return n, nil
}

// NumberOptions configures AskNumber.
type NumberOptions struct {
	Message string
	Default *float64
	Min     *float64
	Max     *float64
	Help    string
}

// AskNumber asks for a floating point number, optionally bounded.
func AskNumber(ui Interface, opts NumberOptions) (float64, error) {
	def := ""
	if opts.Default != nil {
		def = strconv.FormatFloat(*opts.Default, 'f', -1, 64)
	}
	answer, err := ui.Text(TextOptions{
		Message:  opts.Message,
		Default:  def,
		Validate: validation.NumberRange(opts.Min, opts.Max),
		Help:     opts.Help,
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse numeric input: %w", err)
	}
	return n, nil
}

// BooleanOptions configures AskBoolean.
type BooleanOptions struct {
	Message string
	Default bool
}

// AskBoolean asks a yes/no question.
func AskBoolean(ui Interface, opts BooleanOptions) (bool, error) {
	return ui.Confirm(ConfirmOptions{
		Message: opts.Message,
		Default: opts.Default,
	})
}
