package iteminput

type staticDef[T any] struct {
	name  string
	value T
}

// Static defines a value fixed by context (e.g. a type tag). It never
// prompts and never appears in edit menus.
func Static[T any](name string, value T) Definition[T] {
	return &staticDef[T]{name: name, value: value}
}

func (d *staticDef[T]) isFixedValue() {}

func (d *staticDef[T]) Name() string {
	return d.name
}

func (d *staticDef[T]) Build(_ *Context) (Result[T], error) {
	return Value(d.value), nil
}

func (d *staticDef[T]) Summarize(_ T, _ *Context) Summary {
	return Uneditable
}

func (d *staticDef[T]) Update(_ T, _ *Context) (Result[T], error) {
	return Value(d.value), nil
}

type computedDef[T any] struct {
	name    string
	compute func(ctx *Context) (T, error)
}

// Computed defines a value derived from ancestor values on every build and
// update. It never prompts and never appears in edit menus; when a sibling
// declared earlier changes, the object editor recomputes it through Refresh.
func Computed[T any](name string, compute func(ctx *Context) (T, error)) Definition[T] {
	return &computedDef[T]{name: name, compute: compute}
}

func (d *computedDef[T]) isFixedValue() {}

func (d *computedDef[T]) Name() string {
	return d.name
}

func (d *computedDef[T]) Build(ctx *Context) (Result[T], error) {
	value, err := d.compute(ctx)
	if err != nil {
		return Canceled[T](), err
	}
	return Value(value), nil
}

func (d *computedDef[T]) Summarize(_ T, _ *Context) Summary {
	return Uneditable
}

func (d *computedDef[T]) Update(_ T, ctx *Context) (Result[T], error) {
	return d.Build(ctx)
}

func (d *computedDef[T]) Refresh(_ T, _ string, ctx *Context) (T, error) {
	return d.compute(ctx)
}
