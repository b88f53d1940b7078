package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// AuthCookieName is the name of the session authentication cookie.
const AuthCookieName = "GeneMuffin_Auth_Cookie"

// AuthenticationMiddleware guards every API route. Requests must come
// from a whitelisted IP when a whitelist is configured, and must carry
// the auth cookie or valid basic auth credentials when those are set.
// The configured password is a sha256 hex digest of the cleartext.
func (g *Gateway) AuthenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(g.config.AllowedIPs) > 0 {
			remoteAddr := strings.Split(r.RemoteAddr, ":")
			if !g.config.AllowedIPs[remoteAddr[0]] {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}
		if g.config.Cookie != "" {
			cookie, err := r.Cookie(AuthCookieName)
			if err != nil {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			if g.config.Cookie != cookie.Value {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}
		if g.config.Username != "" && g.config.Password != "" {
			username, password, ok := r.BasicAuth()
			h := sha256.Sum256([]byte(password))
			password = hex.EncodeToString(h[:])
			if !ok || username != g.config.Username || password != g.config.Password {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CORSAllowAllOriginsMiddleware opens the API to browser clients on any
// origin and answers their preflight requests.
func (g *Gateway) CORSAllowAllOriginsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
