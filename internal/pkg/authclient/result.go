package authclient

import "github.com/ManuelReschke/Store2070/internal/pkg/session"

// Kind classifies why an authentication attempt failed.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindTransport
	KindProtocol
	KindDomain
	KindBusy
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindDomain:
		return "domain"
	case KindBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Result is the outcome of one authentication call. Either Success is true
// and Token/IsAdmin describe the new session, or Message explains the failure
// and Kind says which layer produced it.
type Result struct {
	Success bool
	Token   string
	IsAdmin bool
	UserID  string
	Message string
	Kind    Kind
}

// Session returns the session a successful result established.
func (r Result) Session() session.Session {
	return session.Session{Token: r.Token, IsAdmin: r.IsAdmin}
}

func failure(kind Kind, message string) Result {
	return Result{Kind: kind, Message: message}
}
