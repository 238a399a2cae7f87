package restkit

import (
	"fmt"
	"net/http"
)

// Action identifies one of the fixed CRUD actions a resource can activate.
type Action string

// The fixed action set. Activating anything else is a composition-time error.
const (
	ActionIndex  Action = "index"
	ActionShow   Action = "show"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllActions is the full ordered action set, as activated by ActivateAll.
var AllActions = []Action{ActionIndex, ActionShow, ActionCreate, ActionUpdate, ActionDelete}

// valid reports whether the action belongs to the fixed set.
func (a Action) valid() bool {
	switch a {
	case ActionIndex, ActionShow, ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Feature is a custom, non-CRUD route attached to a resource or its
// collection.
type Feature struct {
	name    string
	methods []string
	handler Handler
	group   bool
}

// Name returns the feature name (also its path segment).
func (f Feature) Name() string { return f.name }

// Methods returns the HTTP methods the feature responds to.
func (f Feature) Methods() []string { return f.methods }

// Group reports whether the feature is mounted on the collection rather than
// a single resource.
func (f Feature) Group() bool { return f.group }

// Resource is the static declaration of one REST resource: its names, the
// actions it activates, the provider performing its data operations, nested
// children, composed includes, and custom features.
//
// A Resource is assembled with the fluent builder API and becomes immutable
// once mounted on a Service. All declaration errors are collected during
// building and surfaced by Mount, so serving never starts on a broken
// composition.
//
// Example:
//
//	orders := restkit.NewResource("order", "orders").
//	    ActivateAll().
//	    Provider(orderProvider).
//	    Child(restkit.NewResource("widget", "widgets").
//	        Activate(restkit.ActionIndex, restkit.ActionShow).
//	        Provider(widgetProvider)).
//	    Feature("cancel", []string{http.MethodPost}, cancelHandler)
type Resource struct {
	name            string
	pluralName      string
	actions         map[Action]bool
	provider        Provider
	providerOptions map[string]any
	children        []*Resource
	includes        []*Resource
	features        []Feature
	links           *Links
	mounted         bool
	errs            []error
}

// NewResource starts declaring a resource. Both the singular and plural
// names are required; violations surface when the resource is mounted.
func NewResource(name, pluralName string) *Resource {
	r := &Resource{
		name:       name,
		pluralName: pluralName,
		actions:    make(map[Action]bool),
		links:      NewLinks(),
	}
	if name == "" || pluralName == "" {
		r.errs = append(r.errs, NewError(ErrInvalidResource, "singular and plural names are required").
			WithResource(name))
	}
	return r
}

// Activate enables the given CRUD actions. Activation has set semantics:
// order and repetition do not affect the resulting route set.
func (r *Resource) Activate(actions ...Action) *Resource {
	for _, a := range actions {
		if !a.valid() {
			r.errs = append(r.errs, NewError(ErrInvalidAction, fmt.Sprintf("unknown action %q", a)).
				WithResource(r.name).
				WithAction(string(a)))
			continue
		}
		r.actions[a] = true
	}
	return r
}

// ActivateAll enables the full action set. Equivalent to
// Activate(AllActions...).
func (r *Resource) ActivateAll() *Resource {
	return r.Activate(AllActions...)
}

// Provider binds the component performing the resource's data operations.
// Activated actions with no provider fall back to the not-implemented
// default; they are never left unroutable.
func (r *Resource) Provider(p Provider) *Resource {
	r.provider = p
	return r
}

// ProviderOptions sets opaque configuration handed to the provider on every
// call, unchanged.
func (r *Resource) ProviderOptions(opts map[string]any) *Resource {
	r.providerOptions = opts
	return r
}

// Child mounts another resource under "/:id/<child plural>" and registers a
// group link to the child collection.
func (r *Resource) Child(child *Resource) *Resource {
	r.children = append(r.children, child)
	r.links.RegisterGroupLink(child.pluralName, "/"+child.pluralName)
	return r
}

// Include mounts another resource under "/<include plural>" alongside this
// one. The included resource gains a group link back to this collection.
func (r *Resource) Include(inc *Resource) *Resource {
	r.includes = append(r.includes, inc)
	inc.links.RegisterGroupLink(r.pluralName, "/"+r.pluralName)
	return r
}

// Feature declares a custom member route at "/:id/<name>" for each of the
// given HTTP methods, and registers a resource link {name, "/<name>"}.
func (r *Resource) Feature(name string, methods []string, handler Handler) *Resource {
	if err := validFeature(name, methods, handler); err != nil {
		r.errs = append(r.errs, err.WithResource(r.name))
		return r
	}
	r.features = append(r.features, Feature{name: name, methods: methods, handler: handler})
	r.links.RegisterResourceLink(name, "/"+name)
	return r
}

// GroupFeature declares a custom collection route at "/<name>" for each of
// the given HTTP methods, and registers a group link {name, "/<name>"}.
func (r *Resource) GroupFeature(name string, methods []string, handler Handler) *Resource {
	if err := validFeature(name, methods, handler); err != nil {
		r.errs = append(r.errs, err.WithResource(r.name))
		return r
	}
	r.features = append(r.features, Feature{name: name, methods: methods, handler: handler, group: true})
	r.links.RegisterGroupLink(name, "/"+name)
	return r
}

// Name returns the singular name.
func (r *Resource) Name() string { return r.name }

// PluralName returns the plural name (the collection path segment).
func (r *Resource) PluralName() string { return r.pluralName }

// Actions returns the activated action set in fixed order.
func (r *Resource) Actions() []Action {
	out := make([]Action, 0, len(r.actions))
	for _, a := range AllActions {
		if r.actions[a] {
			out = append(out, a)
		}
	}
	return out
}

// Activated reports whether an action is enabled.
func (r *Resource) Activated(a Action) bool {
	return r.actions[a]
}

// Links returns the resource's link store.
func (r *Resource) Links() *Links { return r.links }

// Children returns the nested child resources.
func (r *Resource) Children() []*Resource { return r.children }

// Includes returns the composed sibling resources.
func (r *Resource) Includes() []*Resource { return r.includes }

// Features returns the declared features.
func (r *Resource) Features() []Feature { return r.features }

// effectiveProvider returns the bound provider or the shared default.
func (r *Resource) effectiveProvider() Provider {
	if r.provider != nil {
		return r.provider
	}
	return defaultProvider
}

// validate surfaces all collected declaration errors for this resource and
// everything mounted beneath it.
func (r *Resource) validate() error {
	if r.mounted {
		return NewError(ErrAlreadyMounted, "").WithResource(r.name)
	}
	if len(r.errs) > 0 {
		return r.errs[0]
	}
	for _, child := range r.children {
		if err := child.validate(); err != nil {
			return err
		}
	}
	for _, inc := range r.includes {
		if err := inc.validate(); err != nil {
			return err
		}
	}
	return nil
}

// freeze marks the resource tree immutable after composition.
func (r *Resource) freeze() {
	r.mounted = true
	for _, child := range r.children {
		child.freeze()
	}
	for _, inc := range r.includes {
		inc.freeze()
	}
}

func validFeature(name string, methods []string, handler Handler) *Error {
	if name == "" || handler == nil || len(methods) == 0 {
		return NewError(ErrInvalidFeature, "name, methods and handler are required").WithAction(name)
	}
	for _, m := range methods {
		switch m {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions:
		default:
			return NewError(ErrInvalidFeature, fmt.Sprintf("unsupported method %q", m)).WithAction(name)
		}
	}
	return nil
}
