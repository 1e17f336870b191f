package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoAmIHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("authenticated", func(t *testing.T) {
		svc := NewMockWhoAmIer(ctrl)
		svc.EXPECT().WhoAmI(gomock.Any(), models.AuthContext{UserID: 3}).
			Return(&models.UserProfile{ID: 3, Username: "john", Email: "john@example.com"}, nil)

		rr := serveAs(t, NewWhoAmIHandler(svc), 3, httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":3,"username":"john","email":"john@example.com"}`, rr.Body.String())
	})

	t.Run("no token", func(t *testing.T) {
		rr := serveAs(t, NewWhoAmIHandler(NewMockWhoAmIer(ctrl)), 0, httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		refresh, err := testJWT.GenerateRefresh(context.Background(), 3)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)

		rr := serveAs(t, NewWhoAmIHandler(NewMockWhoAmIer(ctrl)), 0, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("user gone", func(t *testing.T) {
		svc := NewMockWhoAmIer(ctrl)
		svc.EXPECT().WhoAmI(gomock.Any(), models.AuthContext{UserID: 3}).Return(nil, services.ErrInvalidToken)

		rr := serveAs(t, NewWhoAmIHandler(svc), 3, httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("without middleware", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewWhoAmIHandler(NewMockWhoAmIer(ctrl))(rr, httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		header       string
		mockSetup    func(m *MockRefresher)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "success",
			header: "Bearer refresh-token",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().Refresh(gomock.Any(), "refresh-token").Return("new-access", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"access":"new-access"}`,
		},
		{
			name:   "rejected",
			header: "Bearer access-token",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().Refresh(gomock.Any(), "access-token").Return("", services.ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid or expired token"}`,
		},
		{
			name:         "missing header",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid or expired token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockRefresher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/auth/token/refresh", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			NewRefreshHandler(testJWT, svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
