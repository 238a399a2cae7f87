package restkit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNotImplementedProvider validates the 501 fallback on every capability.
func TestNotImplementedProvider(t *testing.T) {
	p := NotImplementedProvider{}
	res := NewResource("widget", "widgets")
	ctx := context.Background()

	for name, fn := range map[string]ProviderFunc{
		"index":  p.HandleIndex,
		"show":   p.HandleShow,
		"create": p.HandleCreate,
		"update": p.HandleUpdate,
		"delete": p.HandleDelete,
	} {
		rc := fn(ctx, Context{}, res, nil)
		assert.Equal(t, http.StatusNotImplemented, rc.Status, name)
		assert.Equal(t, "not implemented", rc.Body, name)
		assert.Equal(t, "text/plain; charset=utf-8", rc.ContentType, name)
	}

	// Preload is a pass-through, not a failure.
	rc := p.HandlePreload(ctx, Context{}, res, nil)
	assert.Zero(t, rc.Status)
	assert.Empty(t, rc.Body)
}

// TestProviderFuncsDispatch validates that set capabilities dispatch and
// unset ones fall back to the default.
func TestProviderFuncsDispatch(t *testing.T) {
	res := NewResource("widget", "widgets")
	ctx := context.Background()

	p := ProviderFuncs{
		Show: func(_ context.Context, rc Context, _ *Resource, _ map[string]any) Context {
			rc.Resource = "shown"
			rc.Status = http.StatusOK
			return rc
		},
	}

	rc := p.HandleShow(ctx, Context{}, res, nil)
	assert.Equal(t, "shown", rc.Resource)
	assert.Equal(t, http.StatusOK, rc.Status)

	rc = p.HandleCreate(ctx, Context{}, res, nil)
	assert.Equal(t, http.StatusNotImplemented, rc.Status)

	rc = p.HandlePreload(ctx, Context{}, res, nil)
	assert.Zero(t, rc.Status)
}

// TestProviderFuncsOptionsPassThrough validates that provider options reach
// the capability unchanged.
func TestProviderFuncsOptionsPassThrough(t *testing.T) {
	opts := map[string]any{"table": "widgets", "limit": 5}

	var got map[string]any
	p := ProviderFuncs{
		Index: func(_ context.Context, rc Context, _ *Resource, o map[string]any) Context {
			got = o
			return rc
		},
	}

	_ = p.HandleIndex(context.Background(), Context{}, NewResource("widget", "widgets"), opts)
	assert.Equal(t, opts, got)
}
