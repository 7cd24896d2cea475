// Package iteminput implements a declarative framework for building and
// editing structured values through chained terminal prompts.
//
// A Definition is a recipe for obtaining one value of some type from the
// user. Definitions compose: an Object definition holds one child definition
// per property, an Array definition repeats a single item definition, and
// Optional wraps a definition that is only asked for when a predicate over
// already-entered values holds. The wizard package drives a top-level
// definition through its create/update loop.
//
// # Cancellation
//
// Build and Update never return partially-built values. Either the user
// completes the value and the call returns Value(v), or the user cancels and
// the call returns Canceled(). A parent object aborts its whole build as soon
// as any required child cancels. During editing, cancelling an object's menu
// instead reverts to the original value, so top-level edits are cancel-safe.
//
// # Example
//
//	def := iteminput.Object("Room", []iteminput.Property{
//		{Key: "name", Definition: iteminput.ToAny(iteminput.String("Room name", nil))},
//		{Key: "locationId", Definition: iteminput.ToAny(iteminput.Static("Location", locationID))},
//	}, nil)
package iteminput

import (
	"github.com/hubforge/hubctl/pkg/prompt"
)

// Context carries the prompt collaborator and the ordered stack of
// ancestor-in-progress values, innermost first. Child prompts use the stack
// to reference sibling or parent values already entered.
type Context struct {
	ui    prompt.Interface
	stack []any
}

// NewContext creates a root context with an empty ancestor stack.
func NewContext(ui prompt.Interface) *Context {
	return &Context{ui: ui}
}

// UI returns the prompt collaborator.
func (c *Context) UI() prompt.Interface {
	return c.ui
}

// Stack returns the ancestor values, innermost first.
func (c *Context) Stack() []any {
	return c.stack
}

// With returns a child context whose innermost ancestor is value.
func (c *Context) With(value any) *Context {
	stack := make([]any, 0, len(c.stack)+1)
	stack = append(stack, value)
	stack = append(stack, c.stack...)
	return &Context{ui: c.ui, stack: stack}
}

// Result is the outcome of a Build or Update call: either a completed value
// or a user cancellation. The zero Result holds the zero value.
type Result[T any] struct {
	value    T
	canceled bool
}

// Value wraps a completed value.
func Value[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Canceled is the result of a user cancellation.
func Canceled[T any]() Result[T] {
	return Result[T]{canceled: true}
}

// IsCanceled reports whether the user canceled.
func (r Result[T]) IsCanceled() bool {
	return r.canceled
}

// Value returns the completed value; it is meaningless when IsCanceled.
func (r Result[T]) Value() T {
	return r.value
}

// Summary is the one-line text a definition contributes to an edit menu.
// An uneditable summary hides the item from edit menus entirely.
type Summary struct {
	text     string
	editable bool
}

// Uneditable hides a value from edit menus (used for static and computed
// fields).
var Uneditable = Summary{}

// EditableSummary creates a summary shown in edit menus.
func EditableSummary(text string) Summary {
	return Summary{text: text, editable: true}
}

// Editable reports whether the value appears in edit menus.
func (s Summary) Editable() bool {
	return s.editable
}

// String returns the menu text.
func (s Summary) String() string {
	return s.text
}

// Definition describes how to build or edit one value of type T through
// prompts.
type Definition[T any] interface {
	// Name is the display label used in prompts and menus.
	Name() string

	// Build constructs a fresh value, prompting as needed.
	Build(ctx *Context) (Result[T], error)

	// Summarize produces the one-line edit-menu text for value.
	Summarize(value T, ctx *Context) Summary

	// Update edits an existing value. On cancellation at this level the
	// caller keeps the original.
	Update(original T, ctx *Context) (Result[T], error)
}

// Refresher is implemented by definitions whose value may go stale when an
// earlier sibling property changes. The object editor invokes it, in
// flattened property order, for every property positioned after the one just
// edited.
type Refresher[T any] interface {
	Refresh(original T, changedKey string, ctx *Context) (T, error)
}

// FinalValidator gates the wizard's finish action. A non-nil error blocks
// finishing and forces the user back into editing.
type FinalValidator[T any] interface {
	ValidateFinal(value T) error
}

// fixedValue marks definitions whose value is never user-editable (static
// and computed fields). Array item definitions must not be fixed.
type fixedValue interface {
	isFixedValue()
}

// unwrapper lets adapters expose the definition they wrap so the object
// editor can recognize rolled-up nested objects through ToAny.
type unwrapper interface {
	unwrap() any
}

// rootDefinition strips adapter layers off a definition.
func rootDefinition(def any) any {
	for {
		u, ok := def.(unwrapper)
		if !ok {
			return def
		}
		def = u.unwrap()
	}
}

// isEditable reports whether def can appear inside an Array definition.
func isEditable(def any) bool {
	_, fixed := rootDefinition(def).(fixedValue)
	return !fixed
}

// anyDefinition adapts a typed definition to Definition[any] so it can be
// used as an object property.
type anyDefinition[T any] struct {
	inner Definition[T]
}

// ToAny adapts a typed definition for use as an object property. Passing a
// Definition[any] returns it unchanged.
func ToAny[T any](def Definition[T]) Definition[any] {
	if d, ok := any(def).(Definition[any]); ok {
		return d
	}
	return &anyDefinition[T]{inner: def}
}

func (d *anyDefinition[T]) unwrap() any {
	return d.inner
}

func (d *anyDefinition[T]) Name() string {
	return d.inner.Name()
}

func (d *anyDefinition[T]) Build(ctx *Context) (Result[any], error) {
	r, err := d.inner.Build(ctx)
	if err != nil || r.IsCanceled() {
		return Canceled[any](), err
	}
	return Value[any](r.Value()), nil
}

func (d *anyDefinition[T]) Summarize(value any, ctx *Context) Summary {
	return d.inner.Summarize(d.cast(value), ctx)
}

func (d *anyDefinition[T]) Update(original any, ctx *Context) (Result[any], error) {
	r, err := d.inner.Update(d.cast(original), ctx)
	if err != nil || r.IsCanceled() {
		return Canceled[any](), err
	}
	return Value[any](r.Value()), nil
}

// Refresh delegates to the wrapped definition when it is refreshable and
// returns the original unchanged otherwise.
func (d *anyDefinition[T]) Refresh(original any, changedKey string, ctx *Context) (any, error) {
	refresher, ok := d.inner.(Refresher[T])
	if !ok {
		return original, nil
	}
	refreshed, err := refresher.Refresh(d.cast(original), changedKey, ctx)
	if err != nil {
		return nil, err
	}
	return refreshed, nil
}

// ValidateFinal delegates to the wrapped definition when it carries a final
// validator.
func (d *anyDefinition[T]) ValidateFinal(value any) error {
	validator, ok := d.inner.(FinalValidator[T])
	if !ok {
		return nil
	}
	return validator.ValidateFinal(d.cast(value))
}

func (d *anyDefinition[T]) cast(value any) T {
	if typed, ok := value.(T); ok {
		return typed
	}
	var zero T
	return zero
}
