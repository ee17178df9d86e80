// Package session owns the client-side authentication state.
//
// A [Store] keeps the current user in memory and mirrors it into two caches:
// a durable cache holding the full directory record and a cookie holding the
// record with its passphrase blanked. [Store.CheckAuth] rebuilds the state
// from the caches alone and copies whichever entry is present into the cache
// that lacks it. When both entries are present the durable one wins and the
// two are not compared.
package session
