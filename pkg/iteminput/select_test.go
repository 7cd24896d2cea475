package iteminput

import (
	"fmt"
	"reflect"
	"testing"
)

var scaleChoices = []Choice[string]{
	{Name: "Celsius", Value: "C"},
	{Name: "Fahrenheit", Value: "F"},
}

func TestListSelectionBuild(t *testing.T) {
	def := ListSelection("Scale", scaleChoices, nil)

	ui := newFakeUI(t, "Fahrenheit")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if r.Value() != "F" {
		t.Errorf("Expected 'F', got %q", r.Value())
	}
	if !containsOption(ui.lastSelect(), "Cancel") {
		t.Error("Expected a Cancel option")
	}
}

func TestListSelectionCancel(t *testing.T) {
	def := ListSelection("Scale", scaleChoices, nil)

	ui := newFakeUI(t, "Cancel")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !r.IsCanceled() {
		t.Error("Expected cancellation")
	}
}

func TestListSelectionDefault(t *testing.T) {
	def := ListSelection("Scale", scaleChoices, &ListSelectionOptions[string]{
		Default: strPtr("F"),
	})

	ui := newFakeUI(t, "")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if r.Value() != "F" {
		t.Errorf("Expected the default choice, got %q", r.Value())
	}
	if ui.lastSelect().Default != "Fahrenheit" {
		t.Errorf("Expected default shown by name, got %q", ui.lastSelect().Default)
	}
}

func TestListSelectionUpdateDefaultsToOriginal(t *testing.T) {
	def := ListSelection("Scale", scaleChoices, nil)

	ui := newFakeUI(t, "")
	r, err := def.Update("C", NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if r.Value() != "C" {
		t.Errorf("Expected the original kept, got %q", r.Value())
	}
	if ui.lastSelect().Default != "Celsius" {
		t.Errorf("Expected original as the select default, got %q", ui.lastSelect().Default)
	}
}

func TestListSelectionSummarize(t *testing.T) {
	def := ListSelection("Scale", scaleChoices, nil)

	summary := def.Summarize("C", nil)
	if summary.String() != "Celsius" {
		t.Errorf("Expected summary by display name, got %q", summary.String())
	}
	if !summary.Editable() {
		t.Error("Expected an editable summary")
	}
}

func TestCheckboxBuild(t *testing.T) {
	def := Checkbox("Capabilities", []Choice[string]{
		{Name: "Switch", Value: "switch"},
		{Name: "Dimmer", Value: "dimmer"},
	}, nil)

	ui := newFakeUI(t, []string{"Switch", "Dimmer"})
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !reflect.DeepEqual(r.Value(), []string{"switch", "dimmer"}) {
		t.Errorf("Expected selected values, got %v", r.Value())
	}
	if len(ui.multis[0].Checked) != 0 {
		t.Errorf("Expected nothing pre-checked on build, got %v", ui.multis[0].Checked)
	}
}

func TestCheckboxUpdatePreChecksCurrentValues(t *testing.T) {
	def := Checkbox("Capabilities", []Choice[string]{
		{Name: "Switch", Value: "switch"},
		{Name: "Dimmer", Value: "dimmer"},
	}, nil)

	ui := newFakeUI(t, []string{"Dimmer"})
	r, err := def.Update([]string{"switch"}, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !reflect.DeepEqual(ui.multis[0].Checked, []string{"Switch"}) {
		t.Errorf("Expected current values pre-checked, got %v", ui.multis[0].Checked)
	}
	if !reflect.DeepEqual(r.Value(), []string{"dimmer"}) {
		t.Errorf("Expected new selection, got %v", r.Value())
	}
}

func TestCheckboxValidate(t *testing.T) {
	def := Checkbox("Capabilities", []Choice[string]{
		{Name: "Switch", Value: "switch"},
	}, &CheckboxOptions[string]{
		Validate: func(selected []string) error {
			if len(selected) == 0 {
				return fmt.Errorf("pick at least one")
			}
			return nil
		},
	})

	ui := newFakeUI(t, []string{}, []string{"Switch"})
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !reflect.DeepEqual(r.Value(), []string{"switch"}) {
		t.Errorf("Expected the empty selection re-prompted, got %v", r.Value())
	}
}

func strPtr(s string) *string {
	return &s
}
