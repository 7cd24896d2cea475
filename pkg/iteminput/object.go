package iteminput

import (
	"encoding/json"
	"fmt"

	"github.com/hubforge/hubctl/pkg/prompt"
)

// rollupThreshold is the largest number of defined properties for which a
// nested object's questions are folded into its parent's menu by default.
const rollupThreshold = 3

// Property pairs an object key with the definition that produces its value.
// A nil Definition means the property is skipped silently: never prompted,
// never stored.
type Property struct {
	Key        string
	Definition Definition[any]
}

// ObjectOptions configures an Object definition.
type ObjectOptions struct {
	// RolledUp overrides the default rollup decision (roll up when the
	// object has at most three defined properties).
	RolledUp *bool
	// ValidateFinal gates the wizard's finish action for this object.
	ValidateFinal func(value map[string]any) error
	// Summarize overrides the default edit-menu summary (compact JSON).
	Summarize func(value map[string]any) string
}

type objectDef struct {
	name       string
	properties []Property
	rolledUp   bool
	opts       ObjectOptions
}

// Object defines a structured value built property by property, in
// definition order. Later properties see earlier ones through the context
// stack. When used as a property of another object and rolled up, its
// questions appear inline in the parent's edit menu as parent.child entries.
func Object(name string, properties []Property, opts *ObjectOptions) Definition[map[string]any] {
	if opts == nil {
		opts = &ObjectOptions{}
	}

	rolledUp := definedCount(properties) <= rollupThreshold
	if opts.RolledUp != nil {
		rolledUp = *opts.RolledUp
	}

	return &objectDef{name: name, properties: properties, rolledUp: rolledUp, opts: *opts}
}

func definedCount(properties []Property) int {
	count := 0
	for _, p := range properties {
		if p.Definition != nil {
			count++
		}
	}
	return count
}

// asObject recognizes (possibly adapted) object definitions.
func asObject(def any) (*objectDef, bool) {
	obj, ok := rootDefinition(def).(*objectDef)
	return obj, ok
}

func (d *objectDef) Name() string {
	return d.name
}

// Build iterates properties in definition order. Each property builder sees
// the accumulated partial object as the innermost context value. Any child
// cancellation aborts the whole build; no partial object is ever returned.
func (d *objectDef) Build(ctx *Context) (Result[map[string]any], error) {
	value := map[string]any{}
	childCtx := ctx.With(value)

	for _, p := range d.properties {
		if p.Definition == nil {
			continue
		}
		r, err := p.Definition.Build(childCtx)
		if err != nil {
			return Canceled[map[string]any](), err
		}
		if r.IsCanceled() {
			return Canceled[map[string]any](), nil
		}
		if v := r.Value(); v != nil {
			value[p.Key] = v
		}
	}

	return Value(value), nil
}

func (d *objectDef) Summarize(value map[string]any, _ *Context) Summary {
	if d.opts.Summarize != nil {
		return EditableSummary(d.opts.Summarize(value))
	}
	data, err := json.Marshal(value)
	if err != nil {
		return EditableSummary(fmt.Sprintf("%v", value))
	}
	return EditableSummary(string(data))
}

// ValidateFinal applies the configured whole-object validation.
func (d *objectDef) ValidateFinal(value map[string]any) error {
	if d.opts.ValidateFinal != nil {
		return d.opts.ValidateFinal(value)
	}
	return nil
}

// flatProperty is one entry of the object's menu, flattened one level for
// rolled-up nested objects.
type flatProperty struct {
	flatKey   string
	parentKey string // empty for top-level properties
	key       string // key within its container
	def       Definition[any]
}

func (fp flatProperty) displayName() string {
	if fp.parentKey != "" {
		return fp.flatKey
	}
	return fp.def.Name()
}

// flattened lists the defined properties in menu order, inlining the
// properties of rolled-up nested objects one level deep.
func (d *objectDef) flattened() []flatProperty {
	var out []flatProperty
	for _, p := range d.properties {
		if p.Definition == nil {
			continue
		}
		if obj, ok := asObject(p.Definition); ok && obj.rolledUp {
			for _, cp := range obj.properties {
				if cp.Definition == nil {
					continue
				}
				out = append(out, flatProperty{
					flatKey:   p.Key + "." + cp.Key,
					parentKey: p.Key,
					key:       cp.Key,
					def:       cp.Definition,
				})
			}
			continue
		}
		out = append(out, flatProperty{flatKey: p.Key, key: p.Key, def: p.Definition})
	}
	return out
}

// Update drives the edit-menu loop. Finish returns the accumulated object;
// Cancel returns the original untouched, discarding in-progress edits.
func (d *objectDef) Update(original map[string]any, ctx *Context) (Result[map[string]any], error) {
	working := copyObject(original)

	for {
		childCtx := ctx.With(working)

		var labels []string
		byLabel := map[string]flatProperty{}
		for _, fp := range d.flattened() {
			container, value := d.valueFor(working, fp)
			summaryCtx := childCtx
			if fp.parentKey != "" {
				summaryCtx = childCtx.With(container)
			}
			summary := fp.def.Summarize(value, summaryCtx)
			if !summary.Editable() {
				continue
			}
			label := fmt.Sprintf("%s: %s", fp.displayName(), summary.String())
			labels = append(labels, label)
			byLabel[label] = fp
		}

		options := append(labels, finishOption, cancelOption)
		selected, err := ctx.UI().Select(prompt.SelectOptions{
			Message: d.name,
			Options: options,
			Default: finishOption,
		})
		if err != nil {
			return Canceled[map[string]any](), err
		}

		switch selected {
		case finishOption:
			return Value(working), nil
		case cancelOption:
			return Value(original), nil
		}

		fp, ok := byLabel[selected]
		if !ok {
			continue
		}

		changed, err := d.updateProperty(working, fp, childCtx)
		if err != nil {
			return Canceled[map[string]any](), err
		}
		if changed {
			if err := d.refreshAfter(working, fp.flatKey, ctx); err != nil {
				return Canceled[map[string]any](), err
			}
		}
	}
}

// valueFor resolves the container map and current value for a flattened
// property.
func (d *objectDef) valueFor(working map[string]any, fp flatProperty) (map[string]any, any) {
	if fp.parentKey == "" {
		return working, working[fp.key]
	}
	container, _ := working[fp.parentKey].(map[string]any)
	if container == nil {
		container = map[string]any{}
	}
	return container, container[fp.key]
}

// updateProperty runs one property's own update flow. Child cancellation
// keeps the current value and reports no change.
func (d *objectDef) updateProperty(working map[string]any, fp flatProperty, childCtx *Context) (bool, error) {
	if fp.parentKey == "" {
		r, err := fp.def.Update(working[fp.key], childCtx)
		if err != nil {
			return false, err
		}
		if r.IsCanceled() {
			return false, nil
		}
		setOrDelete(working, fp.key, r.Value())
		return true, nil
	}

	// Copy the nested object before editing so cancelling the outer menu
	// still reverts to the untouched original.
	nested, _ := working[fp.parentKey].(map[string]any)
	copied := copyObject(nested)
	r, err := fp.def.Update(copied[fp.key], childCtx.With(copied))
	if err != nil {
		return false, err
	}
	if r.IsCanceled() {
		return false, nil
	}
	setOrDelete(copied, fp.key, r.Value())
	working[fp.parentKey] = copied
	return true, nil
}

// refreshAfter re-derives dependent values. It fires once per edit action,
// in flattened order, for every property positioned after the changed key,
// including properties inside rolled-up nested objects.
func (d *objectDef) refreshAfter(working map[string]any, changedKey string, ctx *Context) error {
	childCtx := ctx.With(working)
	seen := false
	for _, fp := range d.flattened() {
		if fp.flatKey == changedKey {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		refresher, ok := fp.def.(Refresher[any])
		if !ok {
			continue
		}

		if fp.parentKey == "" {
			value, err := refresher.Refresh(working[fp.key], changedKey, childCtx)
			if err != nil {
				return err
			}
			setOrDelete(working, fp.key, value)
			continue
		}

		nested, _ := working[fp.parentKey].(map[string]any)
		copied := copyObject(nested)
		value, err := refresher.Refresh(copied[fp.key], changedKey, childCtx.With(copied))
		if err != nil {
			return err
		}
		setOrDelete(copied, fp.key, value)
		working[fp.parentKey] = copied
	}
	return nil
}

func copyObject(value map[string]any) map[string]any {
	copied := make(map[string]any, len(value))
	for k, v := range value {
		copied[k] = v
	}
	return copied
}

func setOrDelete(m map[string]any, key string, value any) {
	if value == nil {
		delete(m, key)
		return
	}
	m[key] = value
}
