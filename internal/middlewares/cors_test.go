package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		method        string
		origin        string
		preflight     bool
		wantStatus    int
		wantAllowed   string
		wantNextCalls bool
	}{
		{name: "allowed origin", allowed: []string{"http://localhost:4200"}, method: http.MethodGet, origin: "http://localhost:4200", wantStatus: http.StatusOK, wantAllowed: "http://localhost:4200", wantNextCalls: true},
		{name: "foreign origin", allowed: []string{"http://localhost:4200"}, method: http.MethodGet, origin: "http://evil.example", wantStatus: http.StatusOK, wantAllowed: "", wantNextCalls: true},
		{name: "wildcard echoes origin", allowed: []string{"*"}, method: http.MethodGet, origin: "http://any.example", wantStatus: http.StatusOK, wantAllowed: "http://any.example", wantNextCalls: true},
		{name: "preflight", allowed: []string{"http://localhost:4200"}, method: http.MethodOptions, origin: "http://localhost:4200", preflight: true, wantStatus: http.StatusNoContent, wantAllowed: "http://localhost:4200", wantNextCalls: false},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK, wantNextCalls: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/modules", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()

			CORSMiddleware(tt.allowed)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNextCalls, nextCalled)
		})
	}
}
