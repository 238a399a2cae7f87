package restkit

import (
	"net/http"
)

// Service composes mounted resources into a dispatchable route set on an
// external router. Composition happens once, before serving begins; the
// resulting structures (route set, link stores, subscription table) are
// immutable afterwards and read concurrently without synchronization.
//
// Example:
//
//	router := restkit.NewServeMuxRouter(nil)
//	svc := restkit.New(router)
//	svc.Subscribe("order", restkit.EventCreate, notifyBilling)
//
//	if err := svc.Mount(orders); err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", router.Mux())
type Service struct {
	router       Router
	encoder      Encoder
	access       AccessCheck
	announcer    *Announcer
	errorHandler func(http.ResponseWriter, *http.Request, error)
	basePath     string
	resources    []*Resource
}

// Option configures the Service.
type Option func(*Service)

// New creates a Service bound to the given router.
func New(router Router, opts ...Option) *Service {
	s := &Service{
		router:       router,
		encoder:      JSONEncoder{},
		announcer:    NewAnnouncer(),
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithEncoder replaces the default JSON encoder.
func WithEncoder(enc Encoder) Option {
	return func(s *Service) {
		s.encoder = enc
	}
}

// WithAccessCheck installs the access-control stage. The check runs first on
// every composed route; a returned error terminates the pipeline before any
// other stage executes.
func WithAccessCheck(check AccessCheck) Option {
	return func(s *Service) {
		s.access = check
	}
}

// WithAnnouncer shares an externally owned announcer across services.
func WithAnnouncer(a *Announcer) Option {
	return func(s *Service) {
		s.announcer = a
	}
}

// WithErrorHandler sets a custom handler for access-check rejections and
// subscriber failures.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) Option {
	return func(s *Service) {
		s.errorHandler = fn
	}
}

// WithBasePath mounts all resources under a fixed path prefix, e.g. "/api".
func WithBasePath(prefix string) Option {
	return func(s *Service) {
		s.basePath = prefix
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if IsAccessDenied(err) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Announcer returns the event announcer.
func (s *Service) Announcer() *Announcer {
	return s.announcer
}

// Subscribe registers an event handler on the service announcer. Call during
// composition, before serving starts.
func (s *Service) Subscribe(category, event string, fn EventHandler) {
	s.announcer.Subscribe(category, event, fn)
}

// Resources returns the mounted top-level resources.
func (s *Service) Resources() []*Resource {
	return s.resources
}

// Mount composes res (and everything declared beneath it) into routes on the
// service router. Declaration errors collected during building are returned
// here, before any route is registered: a broken composition never serves.
// The resource tree is frozen afterwards.
func (s *Service) Mount(res *Resource) error {
	if err := res.validate(); err != nil {
		return err
	}
	s.compose(res, s.basePath, nil)
	res.freeze()
	s.resources = append(s.resources, res)
	return nil
}

// compose registers the route set for res under base. pre is the preload
// stage inherited from the enclosing mount, nil at the top level.
func (s *Service) compose(res *Resource, base string, pre *preloadStage) {
	prefix := base + "/" + res.pluralName
	member := prefix + "/:id"

	if res.Activated(ActionIndex) {
		s.router.Handle(http.MethodGet, prefix, s.handleAction(res, ActionIndex, pre))
	}
	if res.Activated(ActionShow) {
		s.router.Handle(http.MethodGet, member, s.handleAction(res, ActionShow, pre))
	}
	if res.Activated(ActionCreate) {
		s.router.Handle(http.MethodPost, prefix, s.handleAction(res, ActionCreate, pre))
	}
	if res.Activated(ActionUpdate) {
		s.router.Handle(http.MethodPut, member, s.handleAction(res, ActionUpdate, pre))
		s.router.Handle(http.MethodPatch, member, s.handleAction(res, ActionUpdate, pre))
	}
	if res.Activated(ActionDelete) {
		s.router.Handle(http.MethodDelete, member, s.handleAction(res, ActionDelete, pre))
	}

	for _, f := range res.features {
		if f.group {
			for _, m := range f.methods {
				s.router.Handle(m, prefix+"/"+f.name, s.handleFeature(res, f, pre))
			}
			continue
		}
		// Member features sit beneath ":id" with a non-empty remaining
		// path, so the resource's own preload runs before the handler.
		self := &preloadStage{provider: res.effectiveProvider(), res: res, opts: res.providerOptions, param: "id"}
		for _, m := range f.methods {
			s.router.Handle(m, member+"/"+f.name, s.handleFeature(res, f, self))
		}
	}

	parentID := ":" + res.name + "_id"
	childPre := &preloadStage{
		provider: res.effectiveProvider(),
		res:      res,
		opts:     res.providerOptions,
		param:    res.name + "_id",
	}
	for _, child := range res.children {
		s.compose(child, prefix+"/"+parentID, childPre)
	}

	for _, inc := range res.includes {
		s.compose(inc, base, pre)
	}
}
