package preview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func testHandler(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	h := NewHandler()
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return h, r
}

func loopbackRequest(method, url string, body []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.RemoteAddr = "127.0.0.1:54321"
	return req
}

func TestUploadServeRevoke(t *testing.T) {
	h, router := testHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loopbackRequest(http.MethodPost, "/api/preview/hero-home-photo", []byte("image-bytes")))
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status: got %d: %s", rec.Code, rec.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["token"] == "" {
		t.Fatal("no token in upload response")
	}
	if !strings.Contains(out["instructions"], "assets/img/hero-home.jpg") {
		t.Errorf("instructions do not name the asset file: %q", out["instructions"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loopbackRequest(http.MethodGet, "/api/preview/image/"+out["token"], nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("serve status: got %d", rec.Code)
	}
	if rec.Body.String() != "image-bytes" {
		t.Errorf("served body: got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loopbackRequest(http.MethodDelete, "/api/preview/image/"+out["token"], nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("revoke status: got %d", rec.Code)
	}
	if h.Previews().Len() != 0 {
		t.Error("preview retained after revoke")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loopbackRequest(http.MethodGet, "/api/preview/image/"+out["token"], nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("revoked token status: got %d, want 404", rec.Code)
	}
}

func TestUploadUnknownTarget(t *testing.T) {
	_, router := testHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loopbackRequest(http.MethodPost, "/api/preview/not-a-slot", []byte("x")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestRejectsRemoteCallers(t *testing.T) {
	_, router := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/preview/targets", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestPreviewNeverTouchesDisk(t *testing.T) {
	// The holding area is purely in-memory; emptying it discards every
	// upload with nothing left behind.
	p := NewPreviews()
	token, err := p.Put("headshot-photo", "image/jpeg", []byte("data"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Fatalf("len: got %d", p.Len())
	}
	p.Revoke(token)
	if _, _, ok := p.Get(token); ok {
		t.Error("revoked preview still retrievable")
	}
}
