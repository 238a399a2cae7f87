package restkit

import (
	"context"
	"net/http"
)

// Provider performs the actual data operations for a resource's actions.
// Each capability receives the request context value, the resource being
// served and its opaque provider options, and returns the updated context.
//
// Errors never cross this boundary as Go errors: a provider signals failure
// by setting ErrorCode and Errors on the returned Context (see
// Context.WithError). The pipeline and encoder inspect those fields.
type Provider interface {
	HandleIndex(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context
	HandleShow(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context
	HandleCreate(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context
	HandleUpdate(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context
	HandleDelete(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context

	// HandlePreload runs before dispatch on routes nested beneath this
	// resource's ":id" segment. Typical implementations load the parent row
	// and advertise it with Context.AppendResourceFor.
	HandlePreload(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context
}

// Router is the external routing collaborator the composed route set binds
// to. Paths use ":name" parameter segments; adapters translate to their
// router's syntax.
type Router interface {
	Handle(method, path string, h http.Handler)
}

// Encoder is the external serialization collaborator. It receives the final
// request context and writes the wire response.
type Encoder interface {
	Encode(w http.ResponseWriter, r *http.Request, rc Context)
}

// Handler is a feature route handler. The request is available on the
// context value.
type Handler func(ctx context.Context, rc Context) Context

// EventHandler consumes a published event. A returned error propagates to
// the publishing pipeline stage and fails the request.
type EventHandler func(ctx context.Context, e Event) error

// AccessCheck guards every composed route. Returning an error short-circuits
// the pipeline before any other stage runs.
type AccessCheck func(r *http.Request) error
