package iteminput

import (
	"reflect"
	"strings"
	"testing"
)

// upperOf derives the uppercase of the named key from the nearest ancestor
// map that defines it.
func upperOf(key string) func(ctx *Context) (string, error) {
	return func(ctx *Context) (string, error) {
		for _, ancestor := range ctx.Stack() {
			if m, ok := ancestor.(map[string]any); ok {
				if s, ok := m[key].(string); ok {
					return strings.ToUpper(s), nil
				}
			}
		}
		return "", nil
	}
}

func TestObjectBuildThreadsContext(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "name", Definition: ToAny(String("Room name", nil))},
		{Key: "slug", Definition: ToAny(Computed("Slug", upperOf("name")))},
	}, nil)

	ui := newFakeUI(t, "kitchen")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if r.IsCanceled() {
		t.Fatal("Expected a completed build")
	}

	want := map[string]any{"name": "kitchen", "slug": "KITCHEN"}
	if !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("Expected %v, got %v", want, r.Value())
	}
	if ui.remaining() != 0 {
		t.Errorf("Expected all answers consumed, %d left", ui.remaining())
	}
}

func TestObjectBuildSkipsNilDefinitions(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "skipped", Definition: nil},
		{Key: "name", Definition: ToAny(String("Name", nil))},
	}, nil)

	ui := newFakeUI(t, "kitchen")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := r.Value()["skipped"]; ok {
		t.Error("Expected skipped property to stay absent")
	}
	if r.Value()["name"] != "kitchen" {
		t.Errorf("Expected name set, got %v", r.Value())
	}
}

func TestObjectBuildCancelAbortsWholeBuild(t *testing.T) {
	def := Object("Location", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "scale", Definition: ToAny(ListSelection("Scale", []Choice[string]{
			{Name: "Celsius", Value: "C"},
		}, nil))},
	}, nil)

	ui := newFakeUI(t, "home", "Cancel")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !r.IsCanceled() {
		t.Error("Expected cancellation of a child to cancel the whole build")
	}
}

func TestObjectBuildOmitsNilValues(t *testing.T) {
	def := Object("Location", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "extra", Definition: Optional(String("Extra", nil), func(*Context) bool { return false }, nil)},
	}, nil)

	ui := newFakeUI(t, "home")
	r, err := def.Build(NewContext(ui))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := r.Value()["extra"]; ok {
		t.Errorf("Expected inactive property omitted, got %v", r.Value())
	}
}

func TestObjectSummarizeDefaultIsCompactJSON(t *testing.T) {
	def := Object("Room", nil, nil)

	summary := def.Summarize(map[string]any{"name": "kitchen"}, nil)
	if !summary.Editable() {
		t.Error("Expected object summaries to be editable")
	}
	if summary.String() != `{"name":"kitchen"}` {
		t.Errorf("Expected compact JSON, got %q", summary.String())
	}
}

func TestObjectSummarizeOverride(t *testing.T) {
	def := Object("Room", nil, &ObjectOptions{
		Summarize: func(value map[string]any) string {
			s, _ := value["name"].(string)
			return s
		},
	})

	summary := def.Summarize(map[string]any{"name": "kitchen"}, nil)
	if summary.String() != "kitchen" {
		t.Errorf("Expected override summary, got %q", summary.String())
	}
}

func TestRollupThreshold(t *testing.T) {
	lat := Property{Key: "latitude", Definition: ToAny(Number("Latitude", nil))}
	long := Property{Key: "longitude", Definition: ToAny(Number("Longitude", nil))}
	alt := Property{Key: "altitude", Definition: ToAny(Number("Altitude", nil))}
	heading := Property{Key: "heading", Definition: ToAny(Number("Heading", nil))}

	tests := []struct {
		name       string
		nested     Definition[map[string]any]
		wantRolled bool
	}{
		{"two properties", Object("Coords", []Property{lat, long}, nil), true},
		{"three properties", Object("Coords", []Property{lat, long, alt}, nil), true},
		{"four properties", Object("Coords", []Property{lat, long, alt, heading}, nil), false},
		{"nil definitions do not count", Object("Coords", []Property{lat, long, alt, {Key: "x"}}, nil), true},
		{"explicit override", Object("Coords", []Property{lat, long}, &ObjectOptions{RolledUp: boolPtr(false)}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := Object("Parent", []Property{
				{Key: "coords", Definition: ToAny(tt.nested)},
			}, nil).(*objectDef)

			flat := parent.flattened()
			rolled := len(flat) > 1 || (len(flat) == 1 && flat[0].parentKey != "")
			if rolled != tt.wantRolled {
				t.Errorf("Expected rolled=%v, got flattened %v", tt.wantRolled, flat)
			}
		})
	}
}

func TestFlattenedKeysAndNames(t *testing.T) {
	nested := Object("Coords", []Property{
		{Key: "latitude", Definition: ToAny(Number("Latitude", nil))},
		{Key: "longitude", Definition: ToAny(Number("Longitude", nil))},
	}, nil)
	parent := Object("Location", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "coords", Definition: ToAny(nested)},
	}, nil).(*objectDef)

	flat := parent.flattened()
	if len(flat) != 3 {
		t.Fatalf("Expected 3 flattened properties, got %d", len(flat))
	}

	if flat[0].flatKey != "name" || flat[0].displayName() != "Name" {
		t.Errorf("Expected top-level property named by its definition, got %+v", flat[0])
	}
	if flat[1].flatKey != "coords.latitude" || flat[1].displayName() != "coords.latitude" {
		t.Errorf("Expected dotted key for rolled-up child, got %+v", flat[1])
	}
	if flat[2].flatKey != "coords.longitude" {
		t.Errorf("Expected dotted key for rolled-up child, got %+v", flat[2])
	}
}

func TestObjectUpdateEditAndFinish(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
	}, nil)

	original := map[string]any{"name": "old"}
	ui := newFakeUI(t, "Name: old", "new", "Finish")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if r.Value()["name"] != "new" {
		t.Errorf("Expected edited value, got %v", r.Value())
	}
	if original["name"] != "old" {
		t.Error("Expected the original map untouched")
	}
}

func TestObjectUpdateCancelReverts(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
	}, nil)

	original := map[string]any{"name": "old"}
	ui := newFakeUI(t, "Name: old", "new", "Cancel")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if r.IsCanceled() {
		t.Fatal("Expected cancel during editing to revert, not cancel")
	}
	if r.Value()["name"] != "old" {
		t.Errorf("Expected the original value back, got %v", r.Value())
	}
}

func TestObjectUpdateChildCancelKeepsCurrentValue(t *testing.T) {
	def := Object("Location", []Property{
		{Key: "scale", Definition: ToAny(ListSelection("Scale", []Choice[string]{
			{Name: "Celsius", Value: "C"},
			{Name: "Fahrenheit", Value: "F"},
		}, nil))},
	}, nil)

	original := map[string]any{"scale": "C"}
	ui := newFakeUI(t, "Scale: Celsius", "Cancel", "Finish")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if r.Value()["scale"] != "C" {
		t.Errorf("Expected child cancel to keep the current value, got %v", r.Value())
	}
}

func TestObjectUpdateRolledUpChild(t *testing.T) {
	nested := Object("Coords", []Property{
		{Key: "latitude", Definition: ToAny(Number("Latitude", nil))},
		{Key: "longitude", Definition: ToAny(Number("Longitude", nil))},
	}, nil)
	def := Object("Location", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "coords", Definition: ToAny(nested)},
	}, nil)

	originalCoords := map[string]any{"latitude": 1.5, "longitude": 2.5}
	original := map[string]any{"name": "home", "coords": originalCoords}
	ui := newFakeUI(t, "coords.latitude: 1.5", "3", "Finish")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	coords, _ := r.Value()["coords"].(map[string]any)
	if coords["latitude"] != 3.0 {
		t.Errorf("Expected nested value edited, got %v", coords)
	}
	if originalCoords["latitude"] != 1.5 {
		t.Error("Expected the original nested map untouched")
	}
}

func TestObjectUpdateCancelRevertsNestedEdits(t *testing.T) {
	nested := Object("Coords", []Property{
		{Key: "latitude", Definition: ToAny(Number("Latitude", nil))},
		{Key: "longitude", Definition: ToAny(Number("Longitude", nil))},
	}, nil)
	def := Object("Location", []Property{
		{Key: "coords", Definition: ToAny(nested)},
	}, nil)

	original := map[string]any{"coords": map[string]any{"latitude": 1.5, "longitude": 2.5}}
	ui := newFakeUI(t, "coords.latitude: 1.5", "3", "Cancel")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	coords, _ := r.Value()["coords"].(map[string]any)
	if coords["latitude"] != 1.5 {
		t.Errorf("Expected outer cancel to revert nested edits, got %v", coords)
	}
}

func TestObjectRefreshAfterEdit(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "before", Definition: ToAny(Computed("Before", upperOf("name")))},
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "after", Definition: ToAny(Computed("After", upperOf("name")))},
	}, nil)

	original := map[string]any{"before": "OLD", "name": "old", "after": "OLD"}
	ui := newFakeUI(t, "Name: old", "new", "Finish")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	value := r.Value()
	if value["after"] != "NEW" {
		t.Errorf("Expected property after the edited one refreshed, got %v", value["after"])
	}
	if value["before"] != "OLD" {
		t.Errorf("Expected property before the edited one untouched, got %v", value["before"])
	}
}

func TestObjectRefreshReachesRolledUpChildren(t *testing.T) {
	nested := Object("Derived", []Property{
		{Key: "upper", Definition: ToAny(Computed("Upper", upperOf("name")))},
	}, nil)
	def := Object("Room", []Property{
		{Key: "name", Definition: ToAny(String("Name", nil))},
		{Key: "derived", Definition: ToAny(nested)},
	}, nil)

	original := map[string]any{"name": "old", "derived": map[string]any{"upper": "OLD"}}
	ui := newFakeUI(t, "Name: old", "new", "Finish")

	r, err := def.Update(original, NewContext(ui))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	derived, _ := r.Value()["derived"].(map[string]any)
	if derived["upper"] != "NEW" {
		t.Errorf("Expected rolled-up child refreshed, got %v", derived)
	}
}

func TestObjectUpdateHidesUneditableProperties(t *testing.T) {
	def := Object("Room", []Property{
		{Key: "kind", Definition: ToAny(Static("Kind", "room"))},
		{Key: "name", Definition: ToAny(String("Name", nil))},
	}, nil)

	original := map[string]any{"kind": "room", "name": "kitchen"}
	ui := newFakeUI(t, "Finish")

	if _, err := def.Update(original, NewContext(ui)); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	menu := ui.lastSelect()
	if len(menu.Options) != 3 {
		t.Errorf("Expected the editable entry plus Finish and Cancel, got %v", menu.Options)
	}
	if containsOption(menu, "Kind: room") {
		t.Error("Expected static property hidden from the menu")
	}
	if menu.Default != "Finish" {
		t.Errorf("Expected Finish as the menu default, got %q", menu.Default)
	}
}

func TestObjectValidateFinal(t *testing.T) {
	def := Object("Room", nil, &ObjectOptions{
		ValidateFinal: func(value map[string]any) error {
			if value["name"] == nil {
				return errString("a name is required")
			}
			return nil
		},
	})

	validator := def.(*objectDef)
	if err := validator.ValidateFinal(map[string]any{}); err == nil {
		t.Error("Expected validation failure for missing name")
	}
	if err := validator.ValidateFinal(map[string]any{"name": "x"}); err != nil {
		t.Errorf("Expected validation to pass, got %v", err)
	}
}

func boolPtr(b bool) *bool {
	return &b
}

type errString string

func (e errString) Error() string {
	return string(e)
}
