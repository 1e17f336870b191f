package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
		expectedBody string
	}{
		{services.ErrEmailInvalid, http.StatusBadRequest, `{"error":"Email is not valid"}`},
		{services.ErrURLExists, http.StatusConflict, `{"error":"URL already exists"}`},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Wrong credentials"}`},
		{services.ErrShortURLNotFound, http.StatusNotFound, `{"error":"Not found"}`},
		{fmt.Errorf("wrapped: %w", services.ErrBookmarkNotFound), http.StatusNotFound, `{"error":"Item not found"}`},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, `{"error":"Something went wrong, we are working on it"}`},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestFallbackHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NewNotFoundHandler()(rr, httptest.NewRequest(http.MethodGet, "/nope/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewMethodNotAllowedHandler()(rr, httptest.NewRequest(http.MethodPost, "/api/bookmarks/stats", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
}
