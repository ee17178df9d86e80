package session

import "github.com/MKhiriev/go-storefront/models"

// State is a snapshot of the session. User is nil unless Authenticated.
type State struct {
	Authenticated bool
	User          *models.User
}

func (s State) clone() State {
	if s.User == nil {
		return State{Authenticated: s.Authenticated}
	}
	u := *s.User
	return State{Authenticated: s.Authenticated, User: &u}
}
