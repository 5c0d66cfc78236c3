package listing

import (
	"testing"

	"lafaek-backend/internal/domain/content"
)

func magazines() []content.Record {
	return []content.Record{
		{ID: "a", TitleEn: "Lafaek Kiik", Code: "LK-1-2016", Year: "2016", Visible: true, Order: 1},
		{ID: "b", TitleEn: "Lafaek Prima", Code: "LK-1-2018", Year: "2018", Visible: true, Order: 2},
		{ID: "c", TitleEn: "Lafaek Manorin", Code: "LK-2-2016", Year: "2016", Visible: true, Order: 3},
		{ID: "d", TitleEn: "Hidden Issue", Code: "LK-9-2019", Year: "2019", Visible: false, Order: 4},
	}
}

func ids(records []content.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func sameIDs(got []content.Record, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, r := range got {
		if r.ID != want[i] {
			return false
		}
	}
	return true
}

func TestApplyIsPure(t *testing.T) {
	records := magazines()
	q := Query{Search: "lafaek", Sort: SortNewest, PublicOnly: true}

	first := Apply(records, q)
	second := Apply(records, q)

	if len(first) != len(second) {
		t.Fatalf("expected identical outputs, got lengths %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("output differs at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	if records[0].ID != "a" || records[3].ID != "d" {
		t.Fatalf("input slice was mutated: %v", ids(records))
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	records := magazines()

	for _, q := range []string{"kiik", "KIIK", "  Kiik "} {
		got := Apply(records, Query{Search: q})
		if !sameIDs(got, "a") {
			t.Fatalf("search %q: expected [a], got %v", q, ids(got))
		}
	}

	if got := Apply(records, Query{Search: "kiikx"}); len(got) != 0 {
		t.Fatalf("search kiikx: expected no matches, got %v", ids(got))
	}

	if got := Apply(records, Query{Search: ""}); len(got) != len(records) {
		t.Fatalf("empty search must match everything, got %v", ids(got))
	}
}

func TestSearchCoversCodeAndCategory(t *testing.T) {
	records := []content.Record{
		{ID: "x", TitleEn: "Photo", CategoryEn: "Events", CategoryTet: "Eventu", Visible: true},
		{ID: "y", TitleEn: "Issue", Code: "LK-3-2020", Visible: true},
	}

	if got := Apply(records, Query{Search: "eventu"}); !sameIDs(got, "x") {
		t.Fatalf("expected tet category match, got %v", ids(got))
	}
	if got := Apply(records, Query{Search: "lk-3"}); !sameIDs(got, "y") {
		t.Fatalf("expected code match, got %v", ids(got))
	}
}

func TestPublicOnlyHidesInvisible(t *testing.T) {
	records := magazines()

	public := Apply(records, Query{PublicOnly: true})
	for _, r := range public {
		if r.ID == "d" {
			t.Fatalf("invisible record leaked into public view")
		}
	}

	admin := Apply(records, Query{})
	if !containsID(admin, "d") {
		t.Fatalf("admin view must include invisible records, got %v", ids(admin))
	}
}

func containsID(records []content.Record, id string) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestNewestOldestSort(t *testing.T) {
	records := []content.Record{
		{ID: "a", Year: "2016", Code: "LK-1-2016", Visible: true},
		{ID: "b", Year: "2018", Code: "LK-1-2018", Visible: true},
	}

	if got := Apply(records, Query{Sort: SortNewest}); !sameIDs(got, "b", "a") {
		t.Fatalf("newest: expected [b a], got %v", ids(got))
	}
	if got := Apply(records, Query{Sort: SortOldest}); !sameIDs(got, "a", "b") {
		t.Fatalf("oldest: expected [a b], got %v", ids(got))
	}
}

func TestSortTiesBreakByCode(t *testing.T) {
	records := []content.Record{
		{ID: "two", Year: "2016", Code: "LK-2-2016", Visible: true},
		{ID: "one", Year: "2016", Code: "LK-1-2016", Visible: true},
	}

	for i := 0; i < 5; i++ {
		got := Apply(records, Query{Sort: SortNewest})
		if !sameIDs(got, "one", "two") {
			t.Fatalf("run %d: expected code tie-break [one two], got %v", i, ids(got))
		}
	}
}

func TestUnparseableYearSortsAsZero(t *testing.T) {
	records := []content.Record{
		{ID: "ok", Year: "2017", Visible: true},
		{ID: "junk", Year: "n/a", Visible: true},
		{ID: "blank", Visible: true},
	}

	got := Apply(records, Query{Sort: SortNewest})
	if got[0].ID != "ok" {
		t.Fatalf("parseable year must sort first, got %v", ids(got))
	}
	if len(got) != 3 {
		t.Fatalf("no record may be dropped by bad data, got %v", ids(got))
	}
}

func TestDateSortFallsBackToManualOrder(t *testing.T) {
	records := []content.Record{
		{ID: "late", Date: "2024-05-01", Order: 2, Visible: true},
		{ID: "early", Date: "2024-01-01", Order: 1, Visible: true},
		{ID: "second", Date: "2024-05-01", Order: 1, Visible: true},
	}

	got := Apply(records, Query{Sort: SortDate})
	if !sameIDs(got, "second", "late", "early") {
		t.Fatalf("expected [second late early], got %v", ids(got))
	}
}

func TestCategoricalFiltersAndTogether(t *testing.T) {
	records := []content.Record{
		{ID: "a", CategoryEn: "Teaching", Year: "2020", Visible: true},
		{ID: "b", CategoryEn: "Teaching", Year: "2021", Visible: true},
		{ID: "c", CategoryEn: "Health", Year: "2020", Visible: true},
	}

	got := Apply(records, Query{Filters: map[string]string{"category": "Teaching", "year": "2020"}})
	if !sameIDs(got, "a") {
		t.Fatalf("expected [a], got %v", ids(got))
	}

	got = Apply(records, Query{Filters: map[string]string{"category": "all", "year": ""}})
	if len(got) != 3 {
		t.Fatalf("sentinel selections must be no-ops, got %v", ids(got))
	}
}

func TestNameSortUsesActiveLanguageWithFallback(t *testing.T) {
	records := []content.Record{
		{ID: "b", TitleEn: "Bee", TitleTet: "Abelha", Visible: true},
		{ID: "a", TitleEn: "Ant", Visible: true},
	}

	if got := Apply(records, Query{Sort: SortName, Lang: "en"}); !sameIDs(got, "a", "b") {
		t.Fatalf("en sort: expected [a b], got %v", ids(got))
	}
	// tet side: "Abelha" < "Ant" (falls back to en title)
	if got := Apply(records, Query{Sort: SortName, Lang: "tet"}); !sameIDs(got, "b", "a") {
		t.Fatalf("tet sort: expected [b a], got %v", ids(got))
	}
}
