// Package restkit provides a declarative composition layer for REST resource
// endpoints with HATEOAS-style link discovery, provider-delegated CRUD, and
// post-mutation event notification.
//
// RestKit separates what a resource is (its declaration) from how it is
// routed, how its data operations run, and how responses are serialized.
// Routing binds to any router through a one-method interface, data access is
// delegated to pluggable providers, and encoding is an injected collaborator.
//
// # Core Concepts
//
// Resource: a static declaration of one REST resource — names, activated
// actions, provider, nested children, composed includes, and custom features.
// Built once at startup with a fluent builder, immutable after mounting.
//
// Provider: the component performing actual data operations. Providers never
// return Go errors; failures travel as error codes on the request context.
//
// Links: each resource carries group (collection-level) and resource
// (instance-level) link declarations, resolved per request against the
// request's base URL into a navigable link document.
//
// Pipeline: every composed route runs a fixed stage order — access check,
// context seeding, preload for nested routes, dispatch, event publication,
// encoding. Any stage can terminate the request early.
//
// Announcer: after a successful create, update, or delete, subscribers for
// that resource and event are invoked synchronously before the response is
// written.
//
// # Basic Usage
//
//	// 1. Declare resources (at application startup)
//	widgets := restkit.NewResource("widget", "widgets").
//	    Activate(restkit.ActionIndex, restkit.ActionShow).
//	    Provider(widgetProvider)
//
//	orders := restkit.NewResource("order", "orders").
//	    ActivateAll().
//	    Provider(orderProvider).
//	    Child(widgets).
//	    Feature("cancel", []string{http.MethodPost}, cancelOrder)
//
//	// 2. Compose the service
//	router := restkit.NewServeMuxRouter(nil)
//	svc := restkit.New(router)
//	svc.Subscribe("order", restkit.EventCreate, notifyBilling)
//
//	if err := svc.Mount(orders); err != nil {
//	    log.Fatal(err)
//	}
//
//	// 3. Serve
//	http.ListenAndServe(":8080", router.Mux())
//
// This yields GET/POST /orders, GET/PUT/PATCH/DELETE /orders/:id,
// POST /orders/:id/cancel, and GET /orders/:order_id/widgets[/:id], with
// group links on /orders advertising the widgets collection.
//
// # Providers
//
// Implement the full Provider interface, or adapt a subset of capabilities
// with ProviderFuncs. Activated actions without a provider respond 501
// rather than being left unroutable. For Postgres-backed resources,
// SQLProvider serves a table directly through dbkit/bun:
//
//	provider, _ := restkit.NewSQLProvider(db, restkit.SQLConfig{
//	    NewModel: func() any { return &Order{} },
//	    NewSlice: func() any { return &[]Order{} },
//	})
//
// # Events
//
// Create and update events fire when the provider produced a resource and a
// subscriber is registered. Delete fires only on a 204 response with a
// current resource attached. Publication is synchronous and a subscriber
// error fails the request — events are never silently lost.
//
// # Concurrency
//
// Composition is single-threaded and happens before serving. Mounted
// resources, link stores, and the subscription table are immutable
// afterwards and read concurrently without locks. The request context is a
// value owned by its request, threaded through the pipeline stages.
package restkit
