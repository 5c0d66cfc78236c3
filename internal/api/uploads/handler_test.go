package uploads

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/uploads/presign", Presign)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPresignRejectsMissingFields(t *testing.T) {
	r := newRouter()

	w := post(t, r, `{"folder":"magazines"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp PresignResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.OK || resp.Error == "" {
		t.Fatalf("failure must surface ok:false with a message, got %+v", resp)
	}
}

func TestPresignRejectsMalformedJSON(t *testing.T) {
	r := newRouter()

	w := post(t, r, `{"folder":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPresignUnavailableWithoutStorage(t *testing.T) {
	Init(nil)
	r := newRouter()

	w := post(t, r, `{"folder":"magazines","fileName":"cover.jpg","contentType":"image/jpeg"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when storage is unconfigured, got %d", w.Code)
	}
}
