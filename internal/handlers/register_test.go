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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := RegisterRequest{Username: "john", Email: "john@example.com", Password: "secret"}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(&models.UserProfile{ID: 1, Username: "john", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"User created","user":{"id":1,"username":"john","email":"john@example.com"}}`,
		},
		{
			name: "password too short",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Password is too short"}`,
		},
		{
			name: "email taken",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email is taken"}`,
		},
		{
			name: "username taken",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Username is taken"}`,
		},
		{
			name: "internal server error",
			body: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Something went wrong, we are working on it"}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
