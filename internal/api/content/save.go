package content

import (
	"encoding/json"
	"strings"

	"lafaek-backend/internal/domain/content"
)

// prepareForSave normalizes a save payload: collection stamped, order
// reassigned densely from array position, client-side temp ids cleared.
// The caller's slice is not touched.
func prepareForSave(collection string, items []content.Record) []content.Record {
	out := make([]content.Record, len(items))
	copy(out, items)

	for i := range out {
		r := &out[i]
		r.Collection = collection
		r.Order = i + 1
		if isTempID(r.ID) {
			r.ID = ""
		}
		if len(r.Extra) == 0 {
			r.Extra = json.RawMessage("{}")
		}
		if r.Media == nil {
			r.Media = content.StringList{}
		}
	}
	return out
}

// The admin UI hands out "temp-<timestamp>-<random>" ids to rows that have
// never been saved.
func isTempID(id string) bool {
	return strings.HasPrefix(id, "temp-")
}
