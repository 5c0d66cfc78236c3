package uploads

import (
	"net/http"

	"lafaek-backend/internal/media"

	"github.com/gin-gonic/gin"
)

var presigner *media.Presigner

// Init hands the package its presigner. Left nil (e.g. no AWS config in a
// local dev run), the endpoint answers 503 instead of panicking.
func Init(p *media.Presigner) {
	presigner = p
}

type PresignRequest struct {
	Folder      string `json:"folder" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type PresignResponse struct {
	OK bool `json:"ok"`
	*media.PresignedUpload
	Error string `json:"error,omitempty"`
}

// ------------------------------
// POST /admin/uploads/presign
// ------------------------------
// Step one of the two-step upload: the browser asks for a signed POST
// target, then sends the file straight to the bucket. Nothing durable
// happens here; the object key only sticks once the admin saves the
// collection that references it.
func Presign(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PresignResponse{OK: false, Error: err.Error()})
		return
	}

	if presigner == nil {
		c.JSON(http.StatusServiceUnavailable, PresignResponse{OK: false, Error: "Uploads are not configured"})
		return
	}

	upload, err := presigner.PresignUpload(c.Request.Context(), req.Folder, req.FileName, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, PresignResponse{OK: false, Error: "Failed to presign upload"})
		return
	}

	c.JSON(http.StatusOK, PresignResponse{OK: true, PresignedUpload: upload})
}
