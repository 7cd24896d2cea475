package iteminput

import (
	"strings"

	"github.com/hubforge/hubctl/pkg/prompt"
)

const cancelOption = "Cancel"

// Choice pairs a display name with the value it stands for.
type Choice[T comparable] struct {
	Name  string
	Value T
}

// ListSelectionOptions configures a ListSelection definition.
type ListSelectionOptions[T comparable] struct {
	Default *T
}

type listSelectionDef[T comparable] struct {
	name    string
	choices []Choice[T]
	opts    ListSelectionOptions[T]
}

// ListSelection defines a value picked from a fixed in-memory choice list
// via a single-select prompt with a cancel option.
func ListSelection[T comparable](name string, choices []Choice[T], opts *ListSelectionOptions[T]) Definition[T] {
	if opts == nil {
		opts = &ListSelectionOptions[T]{}
	}
	return &listSelectionDef[T]{name: name, choices: choices, opts: *opts}
}

func (d *listSelectionDef[T]) Name() string {
	return d.name
}

func (d *listSelectionDef[T]) Build(ctx *Context) (Result[T], error) {
	var def string
	if d.opts.Default != nil {
		def = d.nameOf(*d.opts.Default)
	}
	return d.ask(def, ctx)
}

func (d *listSelectionDef[T]) Summarize(value T, _ *Context) Summary {
	return EditableSummary(d.nameOf(value))
}

func (d *listSelectionDef[T]) Update(original T, ctx *Context) (Result[T], error) {
	return d.ask(d.nameOf(original), ctx)
}

func (d *listSelectionDef[T]) ask(def string, ctx *Context) (Result[T], error) {
	options := make([]string, 0, len(d.choices)+1)
	for _, choice := range d.choices {
		options = append(options, choice.Name)
	}
	options = append(options, cancelOption)

	selected, err := ctx.UI().Select(prompt.SelectOptions{
		Message: d.name,
		Options: options,
		Default: def,
	})
	if err != nil {
		return Canceled[T](), err
	}
	if selected == cancelOption {
		return Canceled[T](), nil
	}

	for _, choice := range d.choices {
		if choice.Name == selected {
			return Value(choice.Value), nil
		}
	}
	return Canceled[T](), nil
}

func (d *listSelectionDef[T]) nameOf(value T) string {
	for _, choice := range d.choices {
		if choice.Value == value {
			return choice.Name
		}
	}
	return ""
}

// CheckboxOptions configures a Checkbox definition.
type CheckboxOptions[T comparable] struct {
	// Validate is applied to the full selection before it is accepted.
	Validate func(selected []T) error
}

type checkboxDef[T comparable] struct {
	name  string
	items []Choice[T]
	opts  CheckboxOptions[T]
}

// Checkbox defines a multi-select over a fixed item list. Items already
// present in the current value are pre-checked when editing.
func Checkbox[T comparable](name string, items []Choice[T], opts *CheckboxOptions[T]) Definition[[]T] {
	if opts == nil {
		opts = &CheckboxOptions[T]{}
	}
	return &checkboxDef[T]{name: name, items: items, opts: *opts}
}

func (d *checkboxDef[T]) Name() string {
	return d.name
}

func (d *checkboxDef[T]) Build(ctx *Context) (Result[[]T], error) {
	return d.Update(nil, ctx)
}

func (d *checkboxDef[T]) Summarize(value []T, _ *Context) Summary {
	names := make([]string, 0, len(value))
	for _, v := range value {
		for _, item := range d.items {
			if item.Value == v {
				names = append(names, item.Name)
				break
			}
		}
	}
	return EditableSummary(strings.Join(names, ", "))
}

func (d *checkboxDef[T]) Update(original []T, ctx *Context) (Result[[]T], error) {
	options := make([]string, 0, len(d.items))
	checked := make([]string, 0, len(original))
	for _, item := range d.items {
		options = append(options, item.Name)
		for _, v := range original {
			if item.Value == v {
				checked = append(checked, item.Name)
				break
			}
		}
	}

	var validate func([]string) error
	if d.opts.Validate != nil {
		validate = func(selected []string) error {
			return d.opts.Validate(d.valuesOf(selected))
		}
	}

	selected, err := ctx.UI().MultiSelect(prompt.MultiSelectOptions{
		Message:  d.name,
		Options:  options,
		Checked:  checked,
		Validate: validate,
	})
	if err != nil {
		return Canceled[[]T](), err
	}

	return Value(d.valuesOf(selected)), nil
}

func (d *checkboxDef[T]) valuesOf(names []string) []T {
	values := make([]T, 0, len(names))
	for _, name := range names {
		for _, item := range d.items {
			if item.Name == name {
				values = append(values, item.Value)
				break
			}
		}
	}
	return values
}
