package restkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContextAppendResource validates that appending initializes both lists
// and records the serving resource's singular name with the current location.
func TestContextAppendResource(t *testing.T) {
	orders := NewResource("order", "orders")
	rc := Context{Module: orders, Location: "http://x/orders/1"}

	assert.Nil(t, rc.References)
	assert.Nil(t, rc.Resources)

	order := map[string]any{"id": 1}
	rc = rc.AppendResource(order)

	require.Len(t, rc.References, 1)
	assert.Equal(t, Reference{Resource: order, Name: "order", Href: "http://x/orders/1"}, rc.References[0])
	require.Len(t, rc.Resources, 1)
	assert.Equal(t, order, rc.Resources[0])
}

// TestContextAppendResourceFor validates appending under another resource's
// name, as preload stages do for parents.
func TestContextAppendResourceFor(t *testing.T) {
	widgets := NewResource("widget", "widgets")
	orders := NewResource("order", "orders")
	rc := Context{Module: widgets, Location: "http://x/orders/1/widgets"}

	rc = rc.AppendResourceFor(orders, "parent")
	require.Len(t, rc.References, 1)
	assert.Equal(t, "order", rc.References[0].Name)
}

// TestContextValueSemantics validates that stages receive independent
// context values.
func TestContextValueSemantics(t *testing.T) {
	rc := Context{Module: NewResource("order", "orders")}
	updated := rc.AppendResource("a")

	assert.Nil(t, rc.References)
	assert.Len(t, updated.References, 1)
}

// TestContextWithError validates provider error recording.
func TestContextWithError(t *testing.T) {
	rc := Context{}
	assert.False(t, rc.Failed())

	rc = rc.WithError(404, CodeNotFound, "row not found")
	assert.True(t, rc.Failed())
	assert.Equal(t, 404, rc.Status)
	assert.Equal(t, CodeNotFound, rc.ErrorCode)
	assert.Equal(t, []string{"row not found"}, rc.Errors)
}

// TestContextParam validates path value extraction with context fallback.
func TestContextParam(t *testing.T) {
	r := httptest.NewRequest("GET", "http://x/orders/42", nil)
	r.SetPathValue("id", "42")
	rc := Context{Request: r}
	assert.Equal(t, "42", rc.Param("id"))
	assert.Equal(t, "", rc.Param("missing"))

	// Context fallback, for routers that stash params in context values.
	r2 := httptest.NewRequest("GET", "http://x/orders/42", nil)
	r2 = r2.WithContext(context.WithValue(r2.Context(), any("order_id"), "7"))
	rc2 := Context{Request: r2}
	assert.Equal(t, "7", rc2.Param("order_id"))
}

// TestRequestBaseURL validates base URL computation from scheme, host, base
// path, and first path segment.
func TestRequestBaseURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/orders/1/widgets", nil)
	assert.Equal(t, "http://api.test/orders", requestBaseURL(r, ""))

	r = httptest.NewRequest("GET", "http://api.test/api/orders/1", nil)
	assert.Equal(t, "http://api.test/api/orders", requestBaseURL(r, "/api"))

	r = httptest.NewRequest("GET", "http://api.test/orders", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://api.test/orders", requestBaseURL(r, ""))
}

// TestRequestLocation validates absolute request URL rendering.
func TestRequestLocation(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/orders/1", nil)
	assert.Equal(t, "http://api.test/orders/1", requestLocation(r))
}

// TestContextStdlibHelpers validates the request ID and actor ID carriers.
func TestContextStdlibHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetRequestID(ctx))
	assert.Equal(t, "", GetActorID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithActorID(ctx, "user-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-1", GetActorID(ctx))
}
