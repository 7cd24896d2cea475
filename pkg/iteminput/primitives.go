package iteminput

import (
	"strconv"

	"github.com/hubforge/hubctl/pkg/prompt"
	"github.com/hubforge/hubctl/pkg/validation"
)

// StringOptions configures a String definition.
type StringOptions struct {
	Default  string
	Validate validation.Func
	Help     string
}

type stringDef struct {
	name string
	opts StringOptions
}

// String defines a free-form string value.
func String(name string, opts *StringOptions) Definition[string] {
	if opts == nil {
		opts = &StringOptions{}
	}
	return &stringDef{name: name, opts: *opts}
}

func (d *stringDef) Name() string {
	return d.name
}

func (d *stringDef) Build(ctx *Context) (Result[string], error) {
	return d.ask(d.opts.Default, ctx)
}

func (d *stringDef) Summarize(value string, _ *Context) Summary {
	return EditableSummary(value)
}

func (d *stringDef) Update(original string, ctx *Context) (Result[string], error) {
	return d.ask(original, ctx)
}

func (d *stringDef) ask(def string, ctx *Context) (Result[string], error) {
	answer, err := prompt.AskString(ctx.UI(), prompt.StringOptions{
		Message:  d.name,
		Default:  def,
		Validate: d.opts.Validate,
		Help:     d.opts.Help,
	})
	if err != nil {
		return Canceled[string](), err
	}
	return Value(answer), nil
}

// IntegerOptions configures an Integer definition.
type IntegerOptions struct {
	Default *int64
	Min     *int64
	Max     *int64
	Help    string
}

type integerDef struct {
	name string
	opts IntegerOptions
}

// Integer defines a whole-number value, optionally bounded.
func Integer(name string, opts *IntegerOptions) Definition[int64] {
	if opts == nil {
		opts = &IntegerOptions{}
	}
	return &integerDef{name: name, opts: *opts}
}

func (d *integerDef) Name() string {
	return d.name
}

func (d *integerDef) Build(ctx *Context) (Result[int64], error) {
	return d.ask(d.opts.Default, ctx)
}

func (d *integerDef) Summarize(value int64, _ *Context) Summary {
	return EditableSummary(strconv.FormatInt(value, 10))
}

func (d *integerDef) Update(original int64, ctx *Context) (Result[int64], error) {
	return d.ask(&original, ctx)
}

func (d *integerDef) ask(def *int64, ctx *Context) (Result[int64], error) {
	answer, err := prompt.AskInteger(ctx.UI(), prompt.IntegerOptions{
		Message: d.name,
		Default: def,
		Min:     d.opts.Min,
		Max:     d.opts.Max,
		Help:    d.opts.Help,
	})
	if err != nil {
		return Canceled[int64](), err
	}
	return Value(answer), nil
}

// NumberOptions configures a Number definition.
type NumberOptions struct {
	Default *float64
	Min     *float64
	Max     *float64
	Help    string
}

type numberDef struct {
	name string
	opts NumberOptions
}

// Number defines a floating point value, optionally bounded.
func Number(name string, opts *NumberOptions) Definition[float64] {
	if opts == nil {
		opts = &NumberOptions{}
	}
	return &numberDef{name: name, opts: *opts}
}

func (d *numberDef) Name() string {
	return d.name
}

func (d *numberDef) Build(ctx *Context) (Result[float64], error) {
	return d.ask(d.opts.Default, ctx)
}

func (d *numberDef) Summarize(value float64, _ *Context) Summary {
	return EditableSummary(strconv.FormatFloat(value, 'f', -1, 64))
}

func (d *numberDef) Update(original float64, ctx *Context) (Result[float64], error) {
	return d.ask(&original, ctx)
}

func (d *numberDef) ask(def *float64, ctx *Context) (Result[float64], error) {
	answer, err := prompt.AskNumber(ctx.UI(), prompt.NumberOptions{
		Message: d.name,
		Default: def,
		Min:     d.opts.Min,
		Max:     d.opts.Max,
		Help:    d.opts.Help,
	})
	if err != nil {
		return Canceled[float64](), err
	}
	return Value(answer), nil
}

// BooleanOptions configures a Boolean definition.
type BooleanOptions struct {
	Default bool
}

type booleanDef struct {
	name string
	opts BooleanOptions
}

// Boolean defines a yes/no value.
func Boolean(name string, opts *BooleanOptions) Definition[bool] {
	if opts == nil {
		opts = &BooleanOptions{}
	}
	return &booleanDef{name: name, opts: *opts}
}

func (d *booleanDef) Name() string {
	return d.name
}

func (d *booleanDef) Build(ctx *Context) (Result[bool], error) {
	return d.ask(d.opts.Default, ctx)
}

func (d *booleanDef) Summarize(value bool, _ *Context) Summary {
	return EditableSummary(strconv.FormatBool(value))
}

func (d *booleanDef) Update(original bool, ctx *Context) (Result[bool], error) {
	return d.ask(original, ctx)
}

func (d *booleanDef) ask(def bool, ctx *Context) (Result[bool], error) {
	answer, err := prompt.AskBoolean(ctx.UI(), prompt.BooleanOptions{
		Message: d.name,
		Default: def,
	})
	if err != nil {
		return Canceled[bool](), err
	}
	return Value(answer), nil
}
