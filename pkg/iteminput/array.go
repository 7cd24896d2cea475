package iteminput

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hubforge/hubctl/pkg/prompt"
)

const (
	addOption    = "Add"
	finishOption = "Finish"
	editOption   = "Edit"
	deleteOption = "Delete"
)

// ArrayOptions configures an Array definition.
type ArrayOptions struct {
	// MinItems is the smallest list the user may finish with; nil means 1.
	MinItems *int
	// MaxItems caps the list; nil means unbounded.
	MaxItems *int
	// AllowDuplicates permits values already present elsewhere in the list.
	AllowDuplicates bool
}

type arrayDef[T any] struct {
	name    string
	itemDef Definition[T]
	opts    ArrayOptions
}

// Array defines an ordered list of values produced by repeating itemDef.
// The item definition must be editable; Array panics otherwise.
func Array[T any](name string, itemDef Definition[T], opts *ArrayOptions) Definition[[]T] {
	if !isEditable(itemDef) {
		panic(fmt.Sprintf("iteminput: item definition %q of array %q must be editable", itemDef.Name(), name))
	}
	if opts == nil {
		opts = &ArrayOptions{}
	}
	return &arrayDef[T]{name: name, itemDef: itemDef, opts: *opts}
}

func (d *arrayDef[T]) Name() string {
	return d.name
}

func (d *arrayDef[T]) minItems() int {
	if d.opts.MinItems == nil {
		return 1
	}
	return *d.opts.MinItems
}

func (d *arrayDef[T]) Build(ctx *Context) (Result[[]T], error) {
	return d.run(nil, ctx)
}

func (d *arrayDef[T]) Summarize(value []T, _ *Context) Summary {
	if len(value) == 1 {
		return EditableSummary("1 item")
	}
	return EditableSummary(fmt.Sprintf("%d items", len(value)))
}

func (d *arrayDef[T]) Update(original []T, ctx *Context) (Result[[]T], error) {
	list := make([]T, len(original))
	copy(list, original)
	return d.run(list, ctx)
}

// run drives the per-iteration menu until the user finishes or cancels.
func (d *arrayDef[T]) run(list []T, ctx *Context) (Result[[]T], error) {
	for {
		childCtx := ctx.With(list)

		options := make([]string, 0, len(list)+3)
		for i, item := range list {
			summary := d.itemDef.Summarize(item, childCtx)
			options = append(options, fmt.Sprintf("%d: %s", i+1, summary.String()))
		}
		if d.opts.MaxItems == nil || len(list) < *d.opts.MaxItems {
			options = append(options, addOption)
		}
		finishAllowed := len(list) >= d.minItems()
		if finishAllowed {
			options = append(options, finishOption)
		}
		options = append(options, cancelOption)

		def := addOption
		if finishAllowed {
			def = finishOption
		}

		selected, err := ctx.UI().Select(prompt.SelectOptions{
			Message: d.name,
			Options: options,
			Default: def,
		})
		if err != nil {
			return Canceled[[]T](), err
		}

		switch selected {
		case addOption:
			r, err := d.itemDef.Build(childCtx)
			if err != nil {
				return Canceled[[]T](), err
			}
			if r.IsCanceled() {
				continue
			}
			value := r.Value()
			if d.isDuplicate(list, value, -1) {
				pterm.Error.Println("Duplicate values are not allowed.")
				continue
			}
			list = append(list, value)

		case finishOption:
			return Value(list), nil

		case cancelOption:
			return Canceled[[]T](), nil

		default:
			index, err := strconv.Atoi(strings.SplitN(selected, ":", 2)[0])
			if err != nil {
				continue
			}
			list, err = d.editItem(list, index-1, childCtx)
			if err != nil {
				return Canceled[[]T](), err
			}
		}
	}
}

// editItem offers Edit/Delete/Cancel for a single item.
func (d *arrayDef[T]) editItem(list []T, index int, ctx *Context) ([]T, error) {
	selected, err := ctx.UI().Select(prompt.SelectOptions{
		Message: fmt.Sprintf("Item %d", index+1),
		Options: []string{editOption, deleteOption, cancelOption},
		Default: editOption,
	})
	if err != nil {
		return nil, err
	}

	switch selected {
	case editOption:
		r, err := d.itemDef.Update(list[index], ctx)
		if err != nil {
			return nil, err
		}
		if r.IsCanceled() {
			return list, nil
		}
		value := r.Value()
		if d.isDuplicate(list, value, index) {
			pterm.Error.Println("Duplicate values are not allowed.")
			return list, nil
		}
		list[index] = value

	case deleteOption:
		list = append(list[:index], list[index+1:]...)
	}

	return list, nil
}

// isDuplicate reports whether value already exists in the list at any
// position other than exclude.
func (d *arrayDef[T]) isDuplicate(list []T, value T, exclude int) bool {
	if d.opts.AllowDuplicates {
		return false
	}
	for i, item := range list {
		if i == exclude {
			continue
		}
		if reflect.DeepEqual(item, value) {
			return true
		}
	}
	return false
}
