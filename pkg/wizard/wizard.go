// Package wizard drives the interactive create/update loop over a top-level
// item-input definition.
//
// After the initial build (or around an existing value, for updates) the
// user cycles through a main menu: edit the value, preview it as JSON or
// YAML, finish, or cancel. Finishing is gated on the definition's final
// validation; cancelling at this level aborts the whole command with
// ErrCanceled, which callers map to a clean exit.
package wizard

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hubforge/hubctl/pkg/config"
	"github.com/hubforge/hubctl/pkg/iteminput"
	"github.com/hubforge/hubctl/pkg/output"
	"github.com/hubforge/hubctl/pkg/prompt"
)

// ErrCanceled signals that the user canceled the command at the top level.
// Commands treat it as a clean, zero-exit-code termination.
var ErrCanceled = errors.New("canceled")

const (
	editOption        = "Edit"
	previewJSONOption = "Preview JSON"
	previewYAMLOption = "Preview YAML"
	cancelOption      = "Cancel"
)

// indentConfigKey is the profile key consulted when no --indent flag is set.
const indentConfigKey = "indent"

// Options configures a wizard run.
type Options struct {
	UI prompt.Interface
	// Config supplies the profile-level indent preference; may be nil.
	Config *config.Config
	// DryRun changes the finish verb to "output"; the caller decides what
	// to do with the finished value.
	DryRun bool
	// FinishVerb overrides the finish menu entry ("create" or "update" by
	// default, depending on entry point).
	FinishVerb string
	// Indent is the command-line indent override; zero means unset.
	Indent int
}

// CreateFromUserInput builds a fresh value from def and runs the main menu
// around it. A cancellation during the initial build aborts immediately with
// ErrCanceled.
func CreateFromUserInput[T any](def iteminput.Definition[T], opts Options) (T, error) {
	var zero T

	r, err := def.Build(iteminput.NewContext(opts.UI))
	if err != nil {
		return zero, err
	}
	if r.IsCanceled() {
		return zero, ErrCanceled
	}

	return mainMenu(def, r.Value(), finishVerb(opts, "create"), opts)
}

// UpdateFromUserInput runs the main menu around an existing value.
func UpdateFromUserInput[T any](def iteminput.Definition[T], original T, opts Options) (T, error) {
	return mainMenu(def, original, finishVerb(opts, "update"), opts)
}

func finishVerb(opts Options, fallback string) string {
	if opts.DryRun {
		return "output"
	}
	if opts.FinishVerb != "" {
		return opts.FinishVerb
	}
	return fallback
}

// mainMenu cycles through Edit / Preview JSON / Preview YAML / Finish /
// Cancel until the value passes final validation and the user finishes, or
// the user cancels.
func mainMenu[T any](def iteminput.Definition[T], value T, verb string, opts Options) (T, error) {
	var zero T

	finishLabel := capitalize(verb)
	indent := resolveIndent(opts)

	for {
		selected, err := opts.UI.Select(prompt.SelectOptions{
			Message: "Choose an action",
			Options: []string{editOption, previewJSONOption, previewYAMLOption, finishLabel, cancelOption},
			Default: finishLabel,
		})
		if err != nil {
			return zero, err
		}

		switch selected {
		case editOption:
			value, err = edit(def, value, opts)
			if err != nil {
				return zero, err
			}

		case previewJSONOption, previewYAMLOption:
			formatter := output.JSON(indent)
			if selected == previewYAMLOption {
				formatter = output.YAML(indent)
			}
			rendered, err := formatter(value)
			if err != nil {
				return zero, err
			}
			pterm.Println(rendered)

			editFurther, err := opts.UI.Confirm(prompt.ConfirmOptions{
				Message: "Edit further?",
				Default: false,
			})
			if err != nil {
				return zero, err
			}
			if editFurther {
				value, err = edit(def, value, opts)
				if err != nil {
					return zero, err
				}
			}

		case finishLabel:
			if validator, ok := def.(iteminput.FinalValidator[T]); ok {
				if err := validator.ValidateFinal(value); err != nil {
					pterm.Error.Println(err.Error())
					value, err = edit(def, value, opts)
					if err != nil {
						return zero, err
					}
					continue
				}
			}
			return value, nil

		case cancelOption:
			return zero, ErrCanceled
		}
	}
}

// edit re-enters the definition's update flow; a cancellation there reverts
// to the value as it stood before the edit.
func edit[T any](def iteminput.Definition[T], value T, opts Options) (T, error) {
	r, err := def.Update(value, iteminput.NewContext(opts.UI))
	if err != nil {
		return value, err
	}
	if r.IsCanceled() {
		return value, nil
	}
	return r.Value(), nil
}

// resolveIndent applies the indent resolution order: command-line flag,
// profile config, built-in default.
func resolveIndent(opts Options) int {
	if opts.Indent > 0 {
		return opts.Indent
	}
	if opts.Config != nil {
		return opts.Config.IntValue(indentConfigKey, output.DefaultIndent)
	}
	return output.DefaultIndent
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
