package guard

import "github.com/ManuelReschke/Store2070/internal/pkg/session"

// Classification tags a route with the access it requires.
type Classification int

const (
	Public Classification = iota
	Authenticated
	AdminOnly
)

func (c Classification) String() string {
	switch c {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin-only"
	default:
		return "unknown"
	}
}

// ParseClassification accepts "public", "authenticated"/"auth" and "admin"/"admin-only".
func ParseClassification(s string) (Classification, bool) {
	switch s {
	case "public":
		return Public, true
	case "authenticated", "auth":
		return Authenticated, true
	case "admin", "admin-only":
		return AdminOnly, true
	}
	return Public, false
}

// State is the progress of one guarded navigation.
type State int

const (
	Unchecked State = iota
	Checking
	Allowed
	RedirectedToLogin
	RedirectedToHome
)

func (s State) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checking:
		return "checking"
	case Allowed:
		return "allowed"
	case RedirectedToLogin:
		return "redirected-to-login"
	case RedirectedToHome:
		return "redirected-to-home"
	default:
		return "unknown"
	}
}

// Terminal reports whether the navigation has been decided.
func (s State) Terminal() bool {
	return s == Allowed || s == RedirectedToLogin || s == RedirectedToHome
}

// Navigation is a single attempt to render a route. Each navigation reads the
// session afresh; nothing is cached between navigations.
type Navigation struct {
	Route Classification
	state State
}

func NewNavigation(route Classification) *Navigation {
	return &Navigation{Route: route}
}

func (n *Navigation) State() State { return n.state }

// Resolve moves the navigation from Unchecked through Checking to a terminal
// state. Resolving an already decided navigation returns its decision.
func (n *Navigation) Resolve(store session.Store) State {
	if n.state.Terminal() {
		return n.state
	}
	n.state = Checking
	n.state = decide(store, n.Route)
	return n.state
}

// Check runs a fresh navigation for route against store.
func Check(store session.Store, route Classification) State {
	return NewNavigation(route).Resolve(store)
}

func decide(store session.Store, route Classification) State {
	if route == Public {
		return Allowed
	}

	var (
		s  session.Session
		ok bool
	)
	if store != nil {
		s, ok = store.Get()
	}
	if !ok {
		return RedirectedToLogin
	}

	if route == AdminOnly && !s.IsAdmin {
		return RedirectedToHome
	}
	return Allowed
}
