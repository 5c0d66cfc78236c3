package content

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// recordKnownKeys are the JSON keys the struct models. Anything else goes
// into the Extra bag on decode and comes back flat on encode.
var recordKnownKeys = map[string]bool{
	"id": true, "order": true, "visible": true,
	"title_en": true, "title_tet": true,
	"excerpt_en": true, "excerpt_tet": true,
	"body_en": true, "body_tet": true,
	"category_en": true, "category_tet": true,
	"code": true, "year": true, "date": true,
	"media":      true,
	"created_at": true, "updated_at": true,
}

// UnmarshalJSON decodes a record leniently: numbers may arrive as strings,
// booleans as anything truthy, and unknown keys are kept in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = flexString(raw["id"])
	r.Order = flexInt(raw["order"])
	if v, ok := raw["visible"]; ok {
		r.Visible = flexBool(v)
	} else {
		r.Visible = true
	}

	r.TitleEn = flexString(raw["title_en"])
	r.TitleTet = flexString(raw["title_tet"])
	r.ExcerptEn = flexString(raw["excerpt_en"])
	r.ExcerptTet = flexString(raw["excerpt_tet"])
	r.BodyEn = flexString(raw["body_en"])
	r.BodyTet = flexString(raw["body_tet"])
	r.CategoryEn = flexString(raw["category_en"])
	r.CategoryTet = flexString(raw["category_tet"])
	r.Code = flexString(raw["code"])
	r.Year = flexString(raw["year"])
	r.Date = flexString(raw["date"])

	r.Media = nil
	if v, ok := raw["media"]; ok {
		if err := json.Unmarshal(v, &r.Media); err != nil {
			return err
		}
	}

	if t, ok := raw["created_at"]; ok {
		_ = json.Unmarshal(t, &r.CreatedAt)
	}
	if t, ok := raw["updated_at"]; ok {
		_ = json.Unmarshal(t, &r.UpdatedAt)
	}

	extra := map[string]json.RawMessage{}
	for k, v := range raw {
		if !recordKnownKeys[k] {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		r.Extra = json.RawMessage("{}")
		return nil
	}
	bag, err := json.Marshal(extra)
	if err != nil {
		return err
	}
	r.Extra = bag
	return nil
}

// MarshalJSON emits the Extra bag flat alongside the known fields. A known
// field always wins over a stale same-named key in the bag.
func (r Record) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if len(r.Extra) > 0 {
		if err := json.Unmarshal(r.Extra, &out); err != nil {
			return nil, err
		}
	}

	out["id"] = r.ID
	out["order"] = r.Order
	out["visible"] = r.Visible
	out["title_en"] = r.TitleEn
	out["title_tet"] = r.TitleTet
	out["excerpt_en"] = r.ExcerptEn
	out["excerpt_tet"] = r.ExcerptTet
	out["body_en"] = r.BodyEn
	out["body_tet"] = r.BodyTet
	out["category_en"] = r.CategoryEn
	out["category_tet"] = r.CategoryTet
	out["code"] = r.Code
	out["year"] = r.Year
	out["date"] = r.Date
	if r.Media == nil {
		out["media"] = []string{}
	} else {
		out["media"] = r.Media
	}
	if !r.CreatedAt.IsZero() {
		out["created_at"] = r.CreatedAt.Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		out["updated_at"] = r.UpdatedAt.Format(time.RFC3339)
	}

	return json.Marshal(out)
}

func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// numbers, booleans: take the literal text
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}

func flexInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

func flexBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f != 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}
