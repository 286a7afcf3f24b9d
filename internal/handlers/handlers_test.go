package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newRequest builds a request with an optional JSON body and {id} URL parameter.
func newRequest(method, target, contentType, body, id string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/plain", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := newRequest(http.MethodPost, "/", tt.contentType, "", "")
			assert.Equal(t, tt.want, isJSON(req))
		})
	}
}

func TestPathID(t *testing.T) {
	id, ok := pathID(newRequest(http.MethodGet, "/", "", "", "42"))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = pathID(newRequest(http.MethodGet, "/", "", "", "abc"))
	assert.False(t, ok)
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, msgUserDeleted)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `"The user has been deleted"`, rr.Body.String())
}
