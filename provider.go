package restkit

import (
	"context"
	"net/http"
)

// defaultProvider serves activated actions that have no bound provider.
var defaultProvider Provider = NotImplementedProvider{}

// NotImplementedProvider is the fallback Provider bound to activated actions
// when a resource declares no provider of its own. Every capability returns
// a 501 with a plain-text body; an activated action is never left
// unroutable.
type NotImplementedProvider struct{}

func (NotImplementedProvider) HandleIndex(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return notImplemented(rc)
}

func (NotImplementedProvider) HandleShow(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return notImplemented(rc)
}

func (NotImplementedProvider) HandleCreate(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return notImplemented(rc)
}

func (NotImplementedProvider) HandleUpdate(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return notImplemented(rc)
}

func (NotImplementedProvider) HandleDelete(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return notImplemented(rc)
}

func (NotImplementedProvider) HandlePreload(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	return rc
}

func notImplemented(rc Context) Context {
	rc.Status = http.StatusNotImplemented
	rc.Body = "not implemented"
	rc.ContentType = "text/plain; charset=utf-8"
	return rc
}

// ProviderFunc is a single provider capability.
type ProviderFunc func(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context

// ProviderFuncs adapts a set of functions into a Provider. Unset
// capabilities fall back to the not-implemented default (Preload falls back
// to a pass-through).
//
// Example:
//
//	widgets.Provider(restkit.ProviderFuncs{
//	    Index: listWidgets,
//	    Show:  getWidget,
//	})
type ProviderFuncs struct {
	Index   ProviderFunc
	Show    ProviderFunc
	Create  ProviderFunc
	Update  ProviderFunc
	Delete  ProviderFunc
	Preload ProviderFunc
}

func (p ProviderFuncs) HandleIndex(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Index == nil {
		return notImplemented(rc)
	}
	return p.Index(ctx, rc, res, opts)
}

func (p ProviderFuncs) HandleShow(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Show == nil {
		return notImplemented(rc)
	}
	return p.Show(ctx, rc, res, opts)
}

func (p ProviderFuncs) HandleCreate(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Create == nil {
		return notImplemented(rc)
	}
	return p.Create(ctx, rc, res, opts)
}

func (p ProviderFuncs) HandleUpdate(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Update == nil {
		return notImplemented(rc)
	}
	return p.Update(ctx, rc, res, opts)
}

func (p ProviderFuncs) HandleDelete(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Delete == nil {
		return notImplemented(rc)
	}
	return p.Delete(ctx, rc, res, opts)
}

func (p ProviderFuncs) HandlePreload(ctx context.Context, rc Context, res *Resource, opts map[string]any) Context {
	if p.Preload == nil {
		return rc
	}
	return p.Preload(ctx, rc, res, opts)
}
