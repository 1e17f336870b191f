package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/services"
	"github.com/sbilibin2017/bookmarker/internal/shortcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	caller  = models.AuthContext{UserID: 1}
	created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	sample  = &models.BookmarkDB{
		BookmarkID: 10,
		UserID:     1,
		URL:        "https://example.com",
		Body:       "note",
		ShortURL:   "aB3",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
)

const sampleJSON = `{"id":10,"url":"https://example.com","body":"note","short_url":"aB3","visits":0,
	"created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:04:05Z"}`

func TestCreateBookmarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		userID       int64
		body         any
		mockSetup    func(m *MockBookmarkCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "created",
			userID: 1,
			body:   BookmarkRequest{URL: "https://example.com", Body: "note"},
			mockSetup: func(m *MockBookmarkCreator) {
				m.EXPECT().Create(gomock.Any(), caller, "https://example.com", "note").Return(sample, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: sampleJSON,
		},
		{
			name:   "invalid url",
			userID: 1,
			body:   BookmarkRequest{URL: "nope"},
			mockSetup: func(m *MockBookmarkCreator) {
				m.EXPECT().Create(gomock.Any(), caller, "nope", "").Return(nil, services.ErrURLInvalid)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Enter a valid url"}`,
		},
		{
			name:   "duplicate url",
			userID: 1,
			body:   BookmarkRequest{URL: "https://example.com"},
			mockSetup: func(m *MockBookmarkCreator) {
				m.EXPECT().Create(gomock.Any(), caller, "https://example.com", "").Return(nil, services.ErrURLExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"URL already exists"}`,
		},
		{
			name:   "code space exhausted",
			userID: 1,
			body:   BookmarkRequest{URL: "https://example.com"},
			mockSetup: func(m *MockBookmarkCreator) {
				m.EXPECT().Create(gomock.Any(), caller, "https://example.com", "").Return(nil, shortcode.ErrExhausted)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Something went wrong, we are working on it"}`,
		},
		{
			name:         "invalid json",
			userID:       1,
			body:         "{",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "unauthenticated",
			body:         BookmarkRequest{URL: "https://example.com"},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Missing Authorization Header"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBookmarkCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serveAs(t, NewCreateBookmarkHandler(svc), tt.userID, jsonRequest(t, http.MethodPost, "/api/bookmarks", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestListBookmarksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPerPage  int
		result       *models.BookmarkPage
		err          error
		expectedCode int
	}{
		{name: "defaults", query: "", wantPage: 1, wantPerPage: 5, result: &models.BookmarkPage{Meta: models.NewPageMeta(1, 5, 0)}, expectedCode: http.StatusOK},
		{name: "explicit", query: "?page=2&per_page=3", wantPage: 2, wantPerPage: 3, result: &models.BookmarkPage{Items: []models.BookmarkDB{*sample}, Meta: models.NewPageMeta(2, 3, 4)}, expectedCode: http.StatusOK},
		{name: "garbage falls back to defaults", query: "?page=abc&per_page=", wantPage: 1, wantPerPage: 5, result: &models.BookmarkPage{Meta: models.NewPageMeta(1, 5, 0)}, expectedCode: http.StatusOK},
		{name: "negative", query: "?page=-1", wantPage: -1, wantPerPage: 5, err: services.ErrInvalidPage, expectedCode: http.StatusBadRequest},
		{name: "past the end", query: "?page=9", wantPage: 9, wantPerPage: 5, err: services.ErrPageNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBookmarkLister(ctrl)
			svc.EXPECT().List(gomock.Any(), caller, tt.wantPage, tt.wantPerPage).Return(tt.result, tt.err)

			rr := serveAs(t, NewListBookmarksHandler(svc), 1, httptest.NewRequest(http.MethodGet, "/api/bookmarks"+tt.query, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.err != nil {
				return
			}

			body := decodeMap(t, rr)
			assert.IsType(t, []any{}, body["data"])
			assert.Len(t, body["data"], len(tt.result.Items))
			meta := body["meta"].(map[string]any)
			assert.EqualValues(t, tt.wantPage, meta["page"])
			assert.Contains(t, meta, "prev_page")
			assert.Contains(t, meta, "next_page")
		})
	}
}

func TestListBookmarksHandler_MetaNulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBookmarkLister(ctrl)
	svc.EXPECT().List(gomock.Any(), caller, 3, 5).
		Return(&models.BookmarkPage{Items: []models.BookmarkDB{}, Meta: models.NewPageMeta(3, 5, 12)}, nil)

	rr := serveAs(t, NewListBookmarksHandler(svc), 1, httptest.NewRequest(http.MethodGet, "/api/bookmarks?page=3", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"page":3,"pages":3,"total_count":12,"prev_page":2,"next_page":null,"has_next":false,"has_prev":true}}`, rr.Body.String())
}

func TestGetBookmarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		svc := NewMockBookmarkGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), caller, int64(10)).Return(sample, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/bookmarks/10", nil), "id", "10")
		rr := serveAs(t, NewGetBookmarkHandler(svc), 1, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, sampleJSON, rr.Body.String())
	})

	t.Run("not owned", func(t *testing.T) {
		svc := NewMockBookmarkGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), models.AuthContext{UserID: 2}, int64(10)).Return(nil, services.ErrBookmarkNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/bookmarks/10", nil), "id", "10")
		rr := serveAs(t, NewGetBookmarkHandler(svc), 2, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Item not found"}`, rr.Body.String())
	})

	for _, id := range []string{"abc", "0", "-3", ""} {
		t.Run("bad id "+id, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/bookmarks/x", nil), "id", id)
			rr := serveAs(t, NewGetBookmarkHandler(NewMockBookmarkGetter(ctrl)), 1, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestUpdateBookmarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "updated", expectedCode: http.StatusOK},
		{name: "not found", err: services.ErrBookmarkNotFound, expectedCode: http.StatusNotFound},
		{name: "invalid url", err: services.ErrURLInvalid, expectedCode: http.StatusBadRequest},
		{name: "conflict", err: services.ErrURLExists, expectedCode: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		for _, method := range []string{http.MethodPut, http.MethodPatch} {
			t.Run(tt.name+" "+method, func(t *testing.T) {
				svc := NewMockBookmarkUpdater(ctrl)
				var ret *models.BookmarkDB
				if tt.err == nil {
					ret = sample
				}
				svc.EXPECT().Update(gomock.Any(), caller, int64(10), "https://example.com", "note").Return(ret, tt.err)

				req := jsonRequest(t, method, "/api/bookmarks/10", BookmarkRequest{URL: "https://example.com", Body: "note"})
				rr := serveAs(t, NewUpdateBookmarkHandler(svc), 1, withURLParam(req, "id", "10"))

				assert.Equal(t, tt.expectedCode, rr.Code)
				if tt.err == nil {
					assert.JSONEq(t, sampleJSON, rr.Body.String())
				}
			})
		}
	}
}

func TestDeleteBookmarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		svc := NewMockBookmarkDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), caller, int64(10)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/bookmarks/10", nil), "id", "10")
		rr := serveAs(t, NewDeleteBookmarkHandler(svc), 1, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockBookmarkDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), caller, int64(10)).Return(services.ErrBookmarkNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/bookmarks/10", nil), "id", "10")
		rr := serveAs(t, NewDeleteBookmarkHandler(svc), 1, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("with data", func(t *testing.T) {
		svc := NewMockStatsReader(ctrl)
		svc.EXPECT().Stats(gomock.Any(), caller).
			Return([]models.BookmarkStat{{BookmarkID: 10, URL: "https://example.com", ShortURL: "aB3", Visits: 7}}, nil)

		rr := serveAs(t, NewStatsHandler(svc), 1, httptest.NewRequest(http.MethodGet, "/api/bookmarks/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":[{"id":10,"url":"https://example.com","short_url":"aB3","visits":7}]}`, rr.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		svc := NewMockStatsReader(ctrl)
		svc.EXPECT().Stats(gomock.Any(), caller).Return(nil, nil)

		rr := serveAs(t, NewStatsHandler(svc), 1, httptest.NewRequest(http.MethodGet, "/api/bookmarks/stats", nil))
		assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
	})
}
