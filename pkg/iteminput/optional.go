package iteminput

// OptionalOptions configures an Optional definition.
type OptionalOptions struct {
	// InitiallyActive seeds whether the wrapped value is assumed to have
	// been populated before the first update, which decides between the
	// wrapped definition's Update and Build when the predicate flips from
	// inactive to active.
	InitiallyActive bool
}

type optionalDef[T any] struct {
	inner     Definition[T]
	isActive  func(ctx *Context) bool
	wasActive bool
}

// Optional wraps a definition that is only solicited while isActive holds
// over the ancestor context. While inactive, build and update yield no value
// and the field is hidden from edit menus.
func Optional[T any](inner Definition[T], isActive func(ctx *Context) bool, opts *OptionalOptions) Definition[any] {
	if opts == nil {
		opts = &OptionalOptions{}
	}
	return &optionalDef[T]{
		inner:     inner,
		isActive:  isActive,
		wasActive: opts.InitiallyActive,
	}
}

func (d *optionalDef[T]) Name() string {
	return d.inner.Name()
}

func (d *optionalDef[T]) Build(ctx *Context) (Result[any], error) {
	if !d.isActive(ctx) {
		d.wasActive = false
		return Value[any](nil), nil
	}
	d.wasActive = true

	r, err := d.inner.Build(ctx)
	if err != nil || r.IsCanceled() {
		return Canceled[any](), err
	}
	return Value[any](r.Value()), nil
}

func (d *optionalDef[T]) Summarize(value any, ctx *Context) Summary {
	if !d.isActive(ctx) {
		return Uneditable
	}
	typed, _ := value.(T)
	return d.inner.Summarize(typed, ctx)
}

func (d *optionalDef[T]) Update(original any, ctx *Context) (Result[any], error) {
	if !d.isActive(ctx) {
		d.wasActive = false
		return Value[any](nil), nil
	}

	var r Result[T]
	var err error
	typed, hasValue := original.(T)
	if d.wasActive && hasValue {
		r, err = d.inner.Update(typed, ctx)
	} else {
		r, err = d.inner.Build(ctx)
	}
	if err != nil || r.IsCanceled() {
		return Canceled[any](), err
	}

	d.wasActive = true
	return Value[any](r.Value()), nil
}

// Refresh drops the value when the field goes inactive and otherwise
// delegates to the wrapped definition when it is refreshable.
func (d *optionalDef[T]) Refresh(original any, changedKey string, ctx *Context) (any, error) {
	if !d.isActive(ctx) {
		d.wasActive = false
		return nil, nil
	}

	refresher, ok := d.inner.(Refresher[T])
	if !ok {
		return original, nil
	}
	typed, hasValue := original.(T)
	if !hasValue {
		return original, nil
	}
	refreshed, err := refresher.Refresh(typed, changedKey, ctx)
	if err != nil {
		return nil, err
	}
	return refreshed, nil
}
