package prompt

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Prompter is the pterm-backed implementation of Interface.
type Prompter struct {
	// DisableColor disables colored output
	DisableColor bool
	// DisableInteractive disables interactive prompts (for non-TTY use);
	// questions resolve to their defaults and fail when no default exists.
	DisableInteractive bool
}

// PrompterConfig configures the Prompter.
type PrompterConfig struct {
	DisableColor       bool
	DisableInteractive bool
}

// NewPrompter creates a new Prompter with the given configuration.
// If config is nil, uses default configuration.
func NewPrompter(config *PrompterConfig) *Prompter {
	if config == nil {
		config = &PrompterConfig{}
	}

	if config.DisableColor {
		pterm.DisableColor()
	}

	return &Prompter{
		DisableColor:       config.DisableColor,
		DisableInteractive: config.DisableInteractive,
	}
}

// Text asks for a single line of text, re-prompting until validation passes.
func (p *Prompter) Text(opts TextOptions) (string, error) {
	if p.DisableInteractive {
		if opts.Default != "" {
			return opts.Default, nil
		}
		return "", fmt.Errorf("interactive prompts disabled")
	}

	for {
		message := opts.Message
		if opts.Default != "" {
			message = fmt.Sprintf("%s (default: %s)", message, opts.Default)
		}
		if opts.Help != "" {
			message = fmt.Sprintf("%s (? for help)", message)
		}

		result, err := pterm.DefaultInteractiveTextInput.
			WithMultiLine(false).
			Show(message)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		result = strings.TrimSpace(result)

		if opts.Help != "" && result == HelpSentinel {
			pterm.Info.Println(opts.Help)
			continue
		}

		if result == "" && opts.Default != "" {
			result = opts.Default
		}

		if opts.Validate != nil {
			if err := opts.Validate(result); err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
		}

		return result, nil
	}
}

// Select asks for a single selection from a list of options.
func (p *Prompter) Select(opts SelectOptions) (string, error) {
	if len(opts.Options) == 0 {
		return "", fmt.Errorf("options list cannot be empty")
	}

	if p.DisableInteractive {
		if opts.Default != "" {
			return opts.Default, nil
		}
		return opts.Options[0], nil
	}

	defaultOption := opts.Options[0]
	for _, opt := range opts.Options {
		if opt == opts.Default {
			defaultOption = opt
			break
		}
	}

	result, err := pterm.DefaultInteractiveSelect.
		WithOptions(opts.Options).
		WithDefaultOption(defaultOption).
		Show(opts.Message)
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}

	return result, nil
}

// MultiSelect asks for zero or more selections from a list of options,
// re-prompting until validation passes.
func (p *Prompter) MultiSelect(opts MultiSelectOptions) ([]string, error) {
	if len(opts.Options) == 0 {
		return nil, fmt.Errorf("options list cannot be empty")
	}

	if p.DisableInteractive {
		return opts.Checked, nil
	}

	for {
		result, err := pterm.DefaultInteractiveMultiselect.
			WithOptions(opts.Options).
			WithDefaultOptions(opts.Checked).
			Show(opts.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to read selections: %w", err)
		}

		if opts.Validate != nil {
			if err := opts.Validate(result); err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
		}

		return result, nil
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(opts ConfirmOptions) (bool, error) {
	if p.DisableInteractive {
		return opts.Default, nil
	}

	result, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(opts.Default).
		Show(opts.Message)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return result, nil
}
