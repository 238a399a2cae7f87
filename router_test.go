package restkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMuxPattern validates ":name" to "{name}" rewriting.
func TestMuxPattern(t *testing.T) {
	cases := map[string]string{
		"/orders":                        "/orders",
		"/orders/:id":                    "/orders/{id}",
		"/orders/:order_id/widgets/:id":  "/orders/{order_id}/widgets/{id}",
		"/accounts/:id/activate":         "/accounts/{id}/activate",
		"/api/orders/:order_id/widgets":  "/api/orders/{order_id}/widgets",
	}
	for in, want := range cases {
		assert.Equal(t, want, muxPattern(in))
	}
}

// TestServeMuxRouterDispatch validates method matching and path parameter
// extraction through the adapter.
func TestServeMuxRouterDispatch(t *testing.T) {
	rt := NewServeMuxRouter(nil)

	var gotID string
	rt.Handle(http.MethodGet, "/orders/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.PathValue("id")
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	rt.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://x/orders/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", gotID)

	// Wrong method does not match.
	w = httptest.NewRecorder()
	rt.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "http://x/orders/42", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// TestNewServeMuxRouterNilMux validates the nil-mux convenience.
func TestNewServeMuxRouterNilMux(t *testing.T) {
	rt := NewServeMuxRouter(nil)
	require.NotNil(t, rt.Mux())

	mux := http.NewServeMux()
	assert.Same(t, mux, NewServeMuxRouter(mux).Mux())
}
