package content

import (
	"encoding/json"
	"testing"

	"lafaek-backend/internal/domain/content"
)

func TestPrepareForSaveNormalizesOrder(t *testing.T) {
	items := []content.Record{
		{ID: "a", Order: 7},
		{ID: "b", Order: 7},
		{ID: "c", Order: 0},
	}

	got := prepareForSave("magazines", items)

	for i, r := range got {
		if r.Order != i+1 {
			t.Fatalf("record %d: expected dense order %d, got %d", i, i+1, r.Order)
		}
		if r.Collection != "magazines" {
			t.Fatalf("record %d: collection not stamped, got %q", i, r.Collection)
		}
	}
	if items[0].Order != 7 {
		t.Fatalf("input slice was mutated")
	}
}

func TestPrepareForSaveClearsTempIDs(t *testing.T) {
	items := []content.Record{
		{ID: "temp-1712345678-abc"},
		{ID: "3f0a2e9c-existing"},
	}

	got := prepareForSave("team", items)

	if got[0].ID != "" {
		t.Fatalf("temp id must be cleared for server assignment, got %q", got[0].ID)
	}
	if got[1].ID != "3f0a2e9c-existing" {
		t.Fatalf("real id must survive, got %q", got[1].ID)
	}
}

func TestPrepareForSaveKeepsExtraBag(t *testing.T) {
	payload := []byte(`{"id":"a","title_en":"Test","legacy_field":{"nested":true}}`)
	var r content.Record
	if err := json.Unmarshal(payload, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := prepareForSave("magazines", []content.Record{r})

	var bag map[string]any
	if err := json.Unmarshal(got[0].Extra, &bag); err != nil {
		t.Fatalf("extra bag unreadable: %v", err)
	}
	if _, ok := bag["legacy_field"]; !ok {
		t.Fatalf("unknown field dropped on save path: %s", got[0].Extra)
	}
}

func TestPrepareForSaveDefaultsEmptyFields(t *testing.T) {
	got := prepareForSave("gallery", []content.Record{{}})

	if string(got[0].Extra) != "{}" {
		t.Fatalf("empty extra must default to {}, got %q", got[0].Extra)
	}
	if got[0].Media == nil {
		t.Fatalf("nil media must default to an empty list")
	}
}
