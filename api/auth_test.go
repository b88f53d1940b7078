package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthenticationMiddleware(t *testing.T) {
	g := &Gateway{
		config: &GatewayConfig{
			Cookie:     "testtoken",
			AllowedIPs: map[string]bool{"127.0.0.1": true},
		},
	}
	handler := g.AuthenticationMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		remoteAddr string
		cookie     *http.Cookie
		statusCode int
	}{
		{
			name:       "Valid cookie",
			remoteAddr: "127.0.0.1:52364",
			cookie:     &http.Cookie{Name: AuthCookieName, Value: "testtoken"},
			statusCode: http.StatusOK,
		},
		{
			name:       "Missing cookie",
			remoteAddr: "127.0.0.1:52364",
			statusCode: http.StatusForbidden,
		},
		{
			name:       "Incorrect cookie",
			remoteAddr: "127.0.0.1:52364",
			cookie:     &http.Cookie{Name: AuthCookieName, Value: "nope"},
			statusCode: http.StatusForbidden,
		},
		{
			name:       "IP not on whitelist",
			remoteAddr: "10.0.0.9:52364",
			cookie:     &http.Cookie{Name: AuthCookieName, Value: "testtoken"},
			statusCode: http.StatusForbidden,
		},
	}
	for _, test := range tests {
		r := httptest.NewRequest(http.MethodGet, "/v1/gm/cart", nil)
		r.RemoteAddr = test.remoteAddr
		if test.cookie != nil {
			r.AddCookie(test.cookie)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != test.statusCode {
			t.Errorf("%s: expected status %d, got %d", test.name, test.statusCode, w.Code)
		}
	}
}

func TestAuthenticationMiddlewareBasicAuth(t *testing.T) {
	h := sha256.Sum256([]byte("letmein"))
	g := &Gateway{
		config: &GatewayConfig{
			Username: "gm",
			Password: hex.EncodeToString(h[:]),
		},
	}
	handler := g.AuthenticationMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		username   string
		password   string
		statusCode int
	}{
		{
			name:       "Valid credentials",
			username:   "gm",
			password:   "letmein",
			statusCode: http.StatusOK,
		},
		{
			name:       "Incorrect password",
			username:   "gm",
			password:   "guess",
			statusCode: http.StatusForbidden,
		},
		{
			name:       "Incorrect username",
			username:   "root",
			password:   "letmein",
			statusCode: http.StatusForbidden,
		},
	}
	for _, test := range tests {
		r := httptest.NewRequest(http.MethodGet, "/v1/gm/cart", nil)
		r.SetBasicAuth(test.username, test.password)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != test.statusCode {
			t.Errorf("%s: expected status %d, got %d", test.name, test.statusCode, w.Code)
		}
	}
}
