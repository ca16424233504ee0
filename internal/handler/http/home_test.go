package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/", `{"message":"Hello, world!"}`},
		{"/?name=Bob", `{"message":"Hello, Bob"}`},
		{"/?name=", `{"message":"Hello, world!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			h, authSvc, _ := newTestHandler(t)
			expectAuthenticated(authSvc, 1)

			rec := serve(h, http.MethodGet, tt.target, "", true)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHome_RequiresAuth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
