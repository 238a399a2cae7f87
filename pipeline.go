package restkit

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// preloadStage is the pipeline step that loads an enclosing resource before
// a nested route dispatches. Child mounts inherit their parent's provider
// here; member features inherit their own resource's.
type preloadStage struct {
	provider Provider
	res      *Resource
	opts     map[string]any
	param    string // path parameter carrying the identifier to preload
}

// run invokes the provider preload with the extracted identifier.
func (p *preloadStage) run(ctx context.Context, rc Context) Context {
	rc.PreloadID = rc.Param(p.param)
	return p.provider.HandlePreload(ctx, rc, p.res, p.opts)
}

// handleAction builds the composed handler for one CRUD action. Stage order
// is fixed: access check, seed, preload, dispatch, events, encode. Any stage
// that terminates the request prevents the later ones from running.
func (s *Service) handleAction(res *Resource, action Action, pre *preloadStage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.access != nil {
			if err := s.access(r); err != nil {
				s.errorHandler(w, r, err)
				return
			}
		}

		ctx := r.Context()
		rc := s.seed(res, r)

		if pre != nil {
			rc = pre.run(ctx, rc)
			if rc.Failed() {
				s.encoder.Encode(w, r, rc)
				return
			}
		}

		rc = dispatch(ctx, res, action, rc)

		if err := s.announce(ctx, res, action, rc); err != nil {
			s.errorHandler(w, r, err)
			return
		}

		s.encoder.Encode(w, r, rc)
	})
}

// handleFeature builds the composed handler for a custom feature route.
// Features dispatch to their declared handler and fire no events.
func (s *Service) handleFeature(res *Resource, f Feature, pre *preloadStage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.access != nil {
			if err := s.access(r); err != nil {
				s.errorHandler(w, r, err)
				return
			}
		}

		ctx := r.Context()
		rc := s.seed(res, r)

		if pre != nil {
			rc = pre.run(ctx, rc)
			if rc.Failed() {
				s.encoder.Encode(w, r, rc)
				return
			}
		}

		rc = f.handler(ctx, rc)
		s.encoder.Encode(w, r, rc)
	})
}

// seed creates the request context value: binds the serving resource,
// computes the link base URL and location, and ensures a request ID.
func (s *Service) seed(res *Resource, r *http.Request) Context {
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	return Context{
		Module:    res,
		Request:   r,
		RequestID: id,
		BaseURL:   requestBaseURL(r, s.basePath),
		Location:  requestLocation(r),
	}
}

// dispatch routes the request to the provider capability for the action.
func dispatch(ctx context.Context, res *Resource, action Action, rc Context) Context {
	p := res.effectiveProvider()
	opts := res.providerOptions
	switch action {
	case ActionIndex:
		return p.HandleIndex(ctx, rc, res, opts)
	case ActionShow:
		return p.HandleShow(ctx, rc, res, opts)
	case ActionCreate:
		return p.HandleCreate(ctx, rc, res, opts)
	case ActionUpdate:
		return p.HandleUpdate(ctx, rc, res, opts)
	case ActionDelete:
		return p.HandleDelete(ctx, rc, res, opts)
	}
	return rc
}

// announce fires the post-mutation event for the action, if its fire rule is
// met. Create and update publish when the provider produced a resource and a
// subscriber is registered. Delete publishes only on a 204 with a current
// resource attached; any other status suppresses it.
func (s *Service) announce(ctx context.Context, res *Resource, action Action, rc Context) error {
	switch action {
	case ActionCreate, ActionUpdate:
		event := string(action)
		if rc.Resource == nil || !s.announcer.HasSubscribers(res.name, event) {
			return nil
		}
		return s.announcer.Publish(ctx, Event{Category: res.name, Name: event, Data: rc.Resource})
	case ActionDelete:
		if rc.Status != http.StatusNoContent || rc.Resource == nil {
			return nil
		}
		return s.announcer.Publish(ctx, Event{Category: res.name, Name: EventDelete, Data: rc.Resource})
	}
	return nil
}
