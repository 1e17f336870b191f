package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := LoginRequest{Email: "john@example.com", Password: "secret"}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: body,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return(
					&models.UserProfile{ID: 4, Username: "john", Email: "john@example.com"},
					&models.TokenPair{Access: "acc", Refresh: "ref"},
					nil,
				)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"user":{"id":4,"username":"john","email":"john@example.com","access":"acc","refresh":"ref"}}`,
		},
		{
			name: "wrong credentials",
			body: body,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return(nil, nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Wrong credentials"}`,
		},
		{
			name: "internal error",
			body: body,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return(nil, nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Something went wrong, we are working on it"}`,
		},
		{
			name:         "invalid json",
			body:         "not json",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, jsonRequest(t, http.MethodPost, "/api/auth/login", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
