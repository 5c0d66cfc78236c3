package listing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"lafaek-backend/internal/domain/content"
)

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortName   SortKey = "name"
	SortDate   SortKey = "date"
	SortOrder  SortKey = "order"
)

// Query is one set of user-controlled listing inputs. A zero Query keeps
// every record in manual order.
type Query struct {
	// Free-text search, case-insensitive substring over both-language
	// title and category fields plus the record code. Empty matches all.
	Search string

	// Categorical filters, attribute name -> selected value. An empty or
	// "all" selection is a no-op. Active filters AND together.
	Filters map[string]string

	Sort SortKey

	// Lang drives which language side name-sorting favors ("en"/"tet").
	Lang string

	// PublicOnly drops records with Visible == false. Admin listings
	// leave it unset.
	PublicOnly bool
}

// Apply derives the visible, ordered view of records for q. The input
// slice is never mutated; identical inputs produce identical outputs.
func Apply(records []content.Record, q Query) []content.Record {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]content.Record, 0, len(records))
	for _, r := range records {
		if q.PublicOnly && !r.Visible {
			continue
		}
		if needle != "" && !matchesSearch(&r, needle) {
			continue
		}
		if !matchesFilters(&r, q.Filters) {
			continue
		}
		out = append(out, r)
	}

	cmp := comparatorFor(q)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(&out[i], &out[j]) < 0
	})
	return out
}

func matchesSearch(r *content.Record, needle string) bool {
	for _, field := range []string{
		r.TitleEn, r.TitleTet,
		r.CategoryEn, r.CategoryTet,
		r.Code,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesFilters(r *content.Record, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" || want == "all" {
			continue
		}
		switch name {
		case "category":
			if r.CategoryEn != want && r.CategoryTet != want {
				return false
			}
		case "year":
			if r.Year != want {
				return false
			}
		case "code":
			if r.Code != want {
				return false
			}
		}
	}
	return true
}

func comparatorFor(q Query) func(a, b *content.Record) int {
	lang := q.Lang
	switch q.Sort {
	case SortNewest:
		return func(a, b *content.Record) int {
			if d := yearOf(b) - yearOf(a); d != 0 {
				return d
			}
			return tieBreak(a, b)
		}
	case SortOldest:
		return func(a, b *content.Record) int {
			if d := yearOf(a) - yearOf(b); d != 0 {
				return d
			}
			return tieBreak(a, b)
		}
	case SortName:
		return func(a, b *content.Record) int {
			an := strings.ToLower(a.LocalizedTitle(lang))
			bn := strings.ToLower(b.LocalizedTitle(lang))
			if an != bn {
				return strings.Compare(an, bn)
			}
			return tieBreak(a, b)
		}
	case SortDate:
		return func(a, b *content.Record) int {
			ad, bd := dateOf(a), dateOf(b)
			if ad != bd {
				// newest first
				if ad > bd {
					return -1
				}
				return 1
			}
			if a.Order != b.Order {
				return a.Order - b.Order
			}
			return tieBreak(a, b)
		}
	default: // SortOrder and anything unrecognized
		return func(a, b *content.Record) int {
			if a.Order != b.Order {
				return a.Order - b.Order
			}
			return tieBreak(a, b)
		}
	}
}

// tieBreak keeps orderings deterministic when the primary key ties:
// code ascending, then id ascending.
func tieBreak(a, b *content.Record) int {
	if a.Code != b.Code {
		return strings.Compare(a.Code, b.Code)
	}
	return strings.Compare(a.ID, b.ID)
}

// yearOf treats a missing or unparseable year as zero so comparators
// never see NaN-like garbage.
func yearOf(r *content.Record) int {
	y, err := strconv.Atoi(strings.TrimSpace(r.Year))
	if err != nil {
		return 0
	}
	return y
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func dateOf(r *content.Record) int64 {
	s := strings.TrimSpace(r.Date)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix()
		}
	}
	return 0
}
