package restkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(rc Context) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "http://x/widgets", nil)
	JSONEncoder{}.Encode(w, r, rc)
	return w
}

// TestJSONEncoderResourceDocument validates the single-resource document
// with resolved resource links.
func TestJSONEncoderResourceDocument(t *testing.T) {
	widgets := NewResource("widget", "widgets")
	widgets.Links().RegisterResourceLink("activate", "/activate")

	rc := Context{
		Module:   widgets,
		Resource: map[string]any{"id": 1},
		Status:   http.StatusOK,
		BaseURL:  "http://x/widgets",
	}

	w := encode(rc)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, map[string]any{"id": float64(1)}, doc["resource"])

	links := doc["links"].([]any)
	require.Len(t, links, 2)
	assert.Equal(t, map[string]any{"name": "activate", "href": "http://x/widgets/activate"}, links[0])
	assert.Equal(t, map[string]any{"name": "self", "href": "http://x/widgets"}, links[1])
}

// TestJSONEncoderGroupDocument validates the collection document.
func TestJSONEncoderGroupDocument(t *testing.T) {
	widgets := NewResource("widget", "widgets")

	rc := Context{
		Module:    widgets,
		Resources: []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		BaseURL:   "http://x/widgets",
	}

	w := encode(rc)
	assert.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc["resources"], 2)

	links := doc["links"].([]any)
	assert.Equal(t, map[string]any{"name": "index", "href": "http://x/widgets"}, links[len(links)-1])
}

// TestJSONEncoderErrorDocument validates provider error rendering.
func TestJSONEncoderErrorDocument(t *testing.T) {
	rc := Context{}.WithError(http.StatusNotFound, CodeNotFound, "row not found")
	rc.Module = NewResource("widget", "widgets")

	w := encode(rc)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, CodeNotFound, doc["error"])
	assert.Equal(t, []any{"row not found"}, doc["errors"])
}

// TestJSONEncoderLiteralBody validates the plain-body shortcut used by the
// not-implemented fallback.
func TestJSONEncoderLiteralBody(t *testing.T) {
	rc := Context{
		Module:      NewResource("widget", "widgets"),
		Status:      http.StatusNotImplemented,
		Body:        "not implemented",
		ContentType: "text/plain; charset=utf-8",
	}

	w := encode(rc)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "not implemented", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

// TestJSONEncoderNoContent validates that a 204 writes no body.
func TestJSONEncoderNoContent(t *testing.T) {
	rc := Context{
		Module:   NewResource("widget", "widgets"),
		Resource: map[string]any{"id": 1},
		Status:   http.StatusNoContent,
	}

	w := encode(rc)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

// TestJSONEncoderDefaultStatus validates the zero-status default.
func TestJSONEncoderDefaultStatus(t *testing.T) {
	rc := Context{Module: NewResource("widget", "widgets")}
	assert.Equal(t, http.StatusOK, encode(rc).Code)
}
