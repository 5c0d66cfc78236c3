package content

import (
	"net/http"

	"lafaek-backend/config"
	"lafaek-backend/database"
	"lafaek-backend/internal/domain/content"
	"lafaek-backend/internal/listing"
	"lafaek-backend/internal/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func collectionParam(c *gin.Context) (string, bool) {
	name := c.Param("collection")
	if !content.ValidCollection(name) {
		c.JSON(http.StatusNotFound, ListResponse{OK: false, Items: []content.Record{}, Error: "Unknown collection"})
		return "", false
	}
	return name, true
}

func loadCollection(name string) ([]content.Record, error) {
	var records []content.Record
	err := database.DB.
		Where("collection = ?", name).
		Order("sort_order ASC").
		Find(&records).Error
	return records, err
}

// ------------------------------
// GET /content/:collection  (public)
// ------------------------------
func ListPublic(c *gin.Context) {
	name, ok := collectionParam(c)
	if !ok {
		return
	}

	records, err := loadCollection(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ListResponse{OK: false, Items: []content.Record{}, Error: "Failed to load content"})
		return
	}

	q := listing.Query{
		Search:     c.Query("q"),
		Sort:       listing.SortKey(c.DefaultQuery("sort", string(listing.SortOrder))),
		Lang:       c.DefaultQuery("lang", "en"),
		PublicOnly: true,
		Filters: map[string]string{
			"category": c.Query("category"),
			"year":     c.Query("year"),
		},
	}

	items := listing.Apply(records, q)
	for i := range items {
		resolveMedia(&items[i])
	}

	c.JSON(http.StatusOK, ListResponse{OK: true, Items: items})
}

// Public views get displayable URLs; resolution is idempotent so refs
// that are already full URLs survive.
func resolveMedia(r *content.Record) {
	if len(r.Media) == 0 {
		return
	}
	resolved := make(content.StringList, len(r.Media))
	for i, ref := range r.Media {
		resolved[i] = media.ResolveURL(config.MEDIA_ORIGIN, ref)
	}
	r.Media = resolved
}

// ------------------------------
// GET /admin/content/:collection
// ------------------------------
func ListAdmin(c *gin.Context) {
	name, ok := collectionParam(c)
	if !ok {
		return
	}

	records, err := loadCollection(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ListResponse{OK: false, Items: []content.Record{}, Error: "Failed to load content"})
		return
	}

	// Admin sees everything, invisible records included; search is still
	// available for the request-table views.
	items := listing.Apply(records, listing.Query{
		Search: c.Query("q"),
		Sort:   listing.SortKey(c.DefaultQuery("sort", string(listing.SortOrder))),
		Lang:   c.DefaultQuery("lang", "en"),
	})

	c.JSON(http.StatusOK, ListResponse{OK: true, Items: items})
}

// ------------------------------
// PUT /admin/content/:collection
// ------------------------------
// Full-collection replace: the admin UI holds one in-memory copy of the
// collection and pushes the whole thing on Save Changes. Order is
// normalized to the array position; temp-* ids are dropped so postgres
// assigns real ones; Extra bags persist untouched.
func SaveCollection(c *gin.Context) {
	name, ok := collectionParam(c)
	if !ok {
		return
	}

	var req SaveCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SaveResponse{OK: false, Error: err.Error()})
		return
	}

	records := prepareForSave(name, req.Items)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", name).Delete(&content.Record{}).Error; err != nil {
			return err
		}
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, SaveResponse{OK: false, Error: "Failed to save collection"})
		return
	}

	c.JSON(http.StatusOK, SaveResponse{OK: true})
}
