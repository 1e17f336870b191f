package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bookmarker/internal/jwt"
	"github.com/sbilibin2017/bookmarker/internal/middlewares"
	"github.com/stretchr/testify/require"
)

var testJWT = jwt.New(jwt.WithSecretKey("handlers-test-secret"))

// serveAs runs h behind the auth middleware with an access token of userID,
// or without any token when userID is 0.
func serveAs(t *testing.T, h http.Handler, userID int64, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if userID != 0 {
		token, err := testJWT.GenerateAccess(context.Background(), userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	middlewares.AuthMiddleware(testJWT)(h).ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return httptest.NewRequest(method, target, &buf)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}
