package restkit

import (
	"encoding/json"
	"net/http"
)

// JSONEncoder is the default Encoder. It renders the final context as a JSON
// document with resolved navigation links. Replace it with WithEncoder when
// a different wire format is needed; the pipeline is agnostic to the choice.
type JSONEncoder struct{}

// linkDocument is the JSON shape of a resolved context.
type linkDocument struct {
	Resource  any      `json:"resource,omitempty"`
	Resources []any    `json:"resources,omitempty"`
	Links     []Link   `json:"links"`
	Error     string   `json:"error,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Encode implements Encoder.
func (JSONEncoder) Encode(w http.ResponseWriter, r *http.Request, rc Context) {
	if rc.RequestID != "" {
		w.Header().Set("X-Request-ID", rc.RequestID)
	}

	// Literal bodies (the not-implemented fallback, feature handlers that
	// render their own payload) bypass JSON rendering.
	if rc.Body != "" && rc.ErrorCode == "" {
		ct := rc.ContentType
		if ct == "" {
			ct = "text/plain; charset=utf-8"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(statusOr(rc.Status, http.StatusOK))
		_, _ = w.Write([]byte(rc.Body))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if rc.ErrorCode != "" {
		w.WriteHeader(statusOr(rc.Status, http.StatusInternalServerError))
		_ = json.NewEncoder(w).Encode(linkDocument{Error: rc.ErrorCode, Errors: rc.Errors})
		return
	}

	status := statusOr(rc.Status, http.StatusOK)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	doc := linkDocument{Resource: rc.Resource, Resources: rc.Resources}
	if links := rc.Module.Links(); links != nil {
		if rc.Resource != nil && rc.Resources == nil {
			doc.Links = links.ResourceLinksContext(rc)
		} else {
			doc.Links = links.GroupLinksContext(rc)
		}
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc)
}

func statusOr(status, fallback int) int {
	if status == 0 {
		return fallback
	}
	return status
}
