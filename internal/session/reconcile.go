package session

import "github.com/MKhiriev/go-storefront/models"

// entry is a cache value that decoded into a user. raw is the text exactly
// as it was read.
type entry struct {
	user models.User
	raw  string
}

// plan is the outcome of reconciling the two cache entries.
type plan struct {
	// preferred is nil when neither cache holds a user.
	preferred *models.User
	// toCookie and toDurable hold raw text to copy, or "" for no write.
	toCookie  string
	toDurable string
}

// reconcile picks the durable entry first, then the cookie entry, and
// schedules a verbatim copy into whichever cache is empty. Two present
// entries are never compared.
func reconcile(durable, cookie *entry) plan {
	switch {
	case durable != nil && cookie == nil:
		u := durable.user
		return plan{preferred: &u, toCookie: durable.raw}
	case durable == nil && cookie != nil:
		u := cookie.user
		return plan{preferred: &u, toDurable: cookie.raw}
	case durable != nil:
		u := durable.user
		return plan{preferred: &u}
	default:
		return plan{}
	}
}
