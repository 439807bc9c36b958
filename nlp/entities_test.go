package nlp

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

func TestFilterEntities(t *testing.T) {
	raw := []model.Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "x", Label: "ORG"},          // single character: noise
		{Text: "2024", Label: "DATE"},      // purely numeric
		{Text: "acme corp", Label: "ORG"},  // duplicate, case-insensitive
		{Text: "Acme Corp", Label: "GPE"},  // same text, different label: kept
		{Text: "  Berlin  ", Label: "GPE"}, // trimmed before keying
		{Text: "berlin", Label: "GPE"},     // duplicate after trimming
	}

	got := filterEntities(raw)
	want := []model.Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Acme Corp", Label: "GPE"},
		{Text: "Berlin", Label: "GPE"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterEntities = %+v, want %+v", got, want)
	}
}

func TestFilterEntitiesOrderStable(t *testing.T) {
	raw := []model.Entity{
		{Text: "Beta", Label: "ORG"},
		{Text: "Alpha", Label: "ORG"},
		{Text: "beta", Label: "ORG"},
	}
	first := filterEntities(raw)
	second := filterEntities(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs must yield identical output")
	}
	if first[0].Text != "Beta" || first[1].Text != "Alpha" {
		t.Errorf("recognizer order not preserved: %+v", first)
	}
}

func TestEntitiesEmptyInput(t *testing.T) {
	e := NewEngine()
	got, err := e.Entities("   ")
	if err != nil {
		t.Fatalf("Entities failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entities, got %+v", got)
	}
}

// No pair in the output may share a case-insensitive (text, label) key,
// whatever the recognizer found.
func TestEntitiesUniqueness(t *testing.T) {
	e := NewEngine()
	text := "George Washington crossed the Delaware. George Washington won. " +
		"Washington later led America, and america remembers Washington."
	got, err := e.Entities(text)
	if err != nil {
		t.Fatalf("Entities failed: %v", err)
	}
	seen := map[string]bool{}
	for _, ent := range got {
		key := strings.ToLower(ent.Text) + "\x00" + ent.Label
		if seen[key] {
			t.Errorf("duplicate entity key: %q/%s", ent.Text, ent.Label)
		}
		seen[key] = true
		if len(strings.TrimSpace(ent.Text)) <= 1 {
			t.Errorf("noise entity survived: %q", ent.Text)
		}
	}
}
