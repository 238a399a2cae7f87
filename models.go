package restkit

// Link is a single navigational entry in a link document.
// Href is stored as registered; resolution against a base URL happens at
// read time and never rewrites the stored value.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Reference is a resource advertised to sibling handlers during a request.
// References accumulate on the Context as nested routes preload their
// parents, and are merged into group-link documents at encode time.
type Reference struct {
	Resource any    `json:"-"`
	Name     string `json:"name"`
	Href     string `json:"href"`
}

// Link renders the reference as a navigational link.
func (ref Reference) Link() Link {
	return Link{Name: ref.Name, Href: ref.Href}
}

// Event is the payload delivered to subscribers after a successful
// mutating action.
type Event struct {
	Category string // Resource singular name
	Name     string // EventCreate, EventUpdate or EventDelete
	Data     any    // The resource produced by the action
}

// Event names published by the pipeline.
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)
