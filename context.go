package restkit

import (
	"context"
	"net/http"
	"strings"
)

// Context is the per-request state threaded through the pipeline. Each stage
// receives a Context value and returns an updated one; nothing is shared
// between requests, so no synchronization is needed.
type Context struct {
	// Module is the resource serving this request.
	Module *Resource

	// Request is the in-flight HTTP request. Providers may read path
	// parameters, query values, and the body from it.
	Request *http.Request

	// Resource holds the result of a provider call for single-resource
	// actions (show, create, update, delete).
	Resource any

	// Resources holds the result list for index actions.
	Resources []any

	// References are resources advertised by earlier pipeline stages
	// (typically parent preloads) for cross-linking.
	References []Reference

	// Status is the response status. Zero means the encoder picks a default.
	Status int

	// ErrorCode and Errors carry provider-reported failures. Providers never
	// return errors across the contract boundary; they set these instead.
	ErrorCode string
	Errors    []string

	// Body and ContentType, when set, short-cut the encoder with a literal
	// response body.
	Body        string
	ContentType string

	// BaseURL is "<scheme>://<host>/<base path>/<first path segment>",
	// computed once at seed time. Relative links resolve against it.
	BaseURL string

	// Location is the absolute URL of this request.
	Location string

	// RequestID correlates the request across subscribers and providers.
	RequestID string

	// PreloadID is the parent identifier extracted from the matched route,
	// set by the pipeline before HandlePreload runs. Empty on leaf actions.
	PreloadID string
}

// Param returns a path parameter by name. It first consults the request's
// path values (stdlib ServeMux, chi) and falls back to context values set by
// router middleware (gorilla and similar).
func (rc Context) Param(name string) string {
	if rc.Request == nil {
		return ""
	}
	if v := rc.Request.PathValue(name); v != "" {
		return v
	}
	if v := rc.Request.Context().Value(name); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// AppendResource advertises v to sibling handlers under the serving
// resource's singular name. It appends a Reference to References and the raw
// value to Resources, initializing either list when absent.
func (rc Context) AppendResource(v any) Context {
	return rc.AppendResourceFor(rc.Module, v)
}

// AppendResourceFor advertises v under res's singular name. Preload stages
// acting on behalf of a parent resource use this form so the reference
// carries the parent's name rather than the matched route's.
func (rc Context) AppendResourceFor(res *Resource, v any) Context {
	name := ""
	if res != nil {
		name = res.Name()
	}
	if rc.References == nil {
		rc.References = []Reference{}
	}
	if rc.Resources == nil {
		rc.Resources = []any{}
	}
	rc.References = append(rc.References, Reference{Resource: v, Name: name, Href: rc.Location})
	rc.Resources = append(rc.Resources, v)
	return rc
}

// WithError records a provider failure on the context.
func (rc Context) WithError(status int, code string, messages ...string) Context {
	rc.Status = status
	rc.ErrorCode = code
	rc.Errors = append(rc.Errors, messages...)
	return rc
}

// Failed reports whether a provider recorded an error on the context.
func (rc Context) Failed() bool {
	return rc.ErrorCode != ""
}

// requestScheme resolves the request scheme, honoring forwarding proxies.
func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// requestBaseURL computes "<scheme>://<host><basePath>/<first segment>" for
// link resolution. The first segment is taken from the path remaining after
// basePath is stripped.
func requestBaseURL(r *http.Request, basePath string) string {
	path := r.URL.Path
	if basePath != "" {
		path = strings.TrimPrefix(path, basePath)
	}
	path = strings.TrimPrefix(path, "/")
	first := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		first = path[:i]
	}
	var sb strings.Builder
	sb.WriteString(requestScheme(r))
	sb.WriteString("://")
	sb.WriteString(r.Host)
	sb.WriteString(basePath)
	if first != "" {
		sb.WriteString("/")
		sb.WriteString(first)
	}
	return sb.String()
}

// requestLocation returns the absolute URL of the request.
func requestLocation(r *http.Request) string {
	return requestScheme(r) + "://" + r.Host + r.URL.Path
}

// Context keys for RestKit values carried on the stdlib context.
type contextKey string

const (
	contextKeyRequestID contextKey = "restkit:request_id"
	contextKeyActorID   contextKey = "restkit:actor_id"
)

// WithRequestID adds a request ID to the context for correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// GetRequestID retrieves the request ID from context.
// Returns empty string if not set.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(contextKeyRequestID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithActorID adds the acting user's ID to the context. Access checks and
// subscribers can read it for auditing.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, contextKeyActorID, actorID)
}

// GetActorID retrieves the actor ID from context.
func GetActorID(ctx context.Context) string {
	if v := ctx.Value(contextKeyActorID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
