package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

type entityKey struct {
	text  string // lowercased
	label string
}

// Entities runs named-entity recognition over the text and returns the
// filtered, deduplicated entities in recognizer order. The input is
// cleaned first, then bounded to entityTextLimit runes.
func (e *Engine) Entities(text string) ([]model.Entity, error) {
	cleaned := truncate(Clean(text), entityTextLimit)
	if cleaned == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(cleaned, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("entity recognition: %w", err)
	}
	raw := make([]model.Entity, 0, len(doc.Entities()))
	for _, ent := range doc.Entities() {
		raw = append(raw, model.Entity{Text: ent.Text, Label: ent.Label})
	}
	return filterEntities(raw), nil
}

// filterEntities drops noise (single characters, bare numbers) and
// deduplicates by case-insensitive (text, label), keeping the first
// occurrence so repeated runs over identical input stay order-stable.
func filterEntities(raw []model.Entity) []model.Entity {
	var out []model.Entity
	seen := make(map[entityKey]struct{}, len(raw))
	for _, ent := range raw {
		text := strings.TrimSpace(ent.Text)
		if len([]rune(text)) <= 1 {
			continue
		}
		if numericRe.MatchString(text) {
			continue
		}
		key := entityKey{strings.ToLower(text), ent.Label}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, model.Entity{Text: text, Label: ent.Label})
	}
	return out
}
