package content

import (
	"encoding/json"
	"time"
)

// Known collections. Listing endpoints reject anything else.
const (
	CollectionMagazines = "magazines"
	CollectionJobs      = "jobs"
	CollectionGallery   = "gallery"
	CollectionStories   = "stories"
	CollectionTeam      = "team"
	CollectionRequests  = "requests"
	CollectionLibrary   = "library"
)

var knownCollections = map[string]bool{
	CollectionMagazines: true,
	CollectionJobs:      true,
	CollectionGallery:   true,
	CollectionStories:   true,
	CollectionTeam:      true,
	CollectionRequests:  true,
	CollectionLibrary:   true,
}

func ValidCollection(name string) bool {
	return knownCollections[name]
}

// Record is one unit of editorial content (a magazine issue, a job posting,
// a gallery photo, ...). Text fields come in en/tet pairs; fields the admin
// UI does not model are kept verbatim in Extra and re-emitted flat on
// marshal, so an edit round-trip never drops data.
type Record struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Collection string `gorm:"not null;index:idx_records_collection_order,priority:1" json:"-"`

	Order   int  `gorm:"column:sort_order;not null;default:0;index:idx_records_collection_order,priority:2" json:"order"`
	Visible bool `gorm:"not null;default:true" json:"visible"`

	TitleEn    string `json:"title_en"`
	TitleTet   string `json:"title_tet"`
	ExcerptEn  string `json:"excerpt_en"`
	ExcerptTet string `json:"excerpt_tet"`
	BodyEn     string `json:"body_en"`
	BodyTet    string `json:"body_tet"`

	CategoryEn  string `json:"category_en"`
	CategoryTet string `json:"category_tet"`

	// Natural identifier, e.g. a magazine code like "LK-1-2016".
	Code string `gorm:"index" json:"code"`
	Year string `json:"year"`
	Date string `json:"date"`

	// Opaque storage keys, resolved against MEDIA_ORIGIN for display.
	Media StringList `gorm:"type:jsonb;not null;default:'[]'" json:"media"`

	// Everything the struct does not model, preserved as-is.
	Extra json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lang picks which side of an en/tet pair wins; the other side is the
// fallback when the active one is blank.
func pick(lang, en, tet string) string {
	if lang == "tet" {
		if tet != "" {
			return tet
		}
		return en
	}
	if en != "" {
		return en
	}
	return tet
}

func (r *Record) LocalizedTitle(lang string) string   { return pick(lang, r.TitleEn, r.TitleTet) }
func (r *Record) LocalizedExcerpt(lang string) string { return pick(lang, r.ExcerptEn, r.ExcerptTet) }
func (r *Record) LocalizedBody(lang string) string    { return pick(lang, r.BodyEn, r.BodyTet) }
func (r *Record) LocalizedCategory(lang string) string {
	return pick(lang, r.CategoryEn, r.CategoryTet)
}
