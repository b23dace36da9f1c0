// Package filter implements the listing filters as an enumerable registry:
// each filter is a declared type over its fixed option set, with a pure core
// (bounds, date windows, prefix matching) and a GORM scope built on top of it.
// An empty or unknown option is the identity scope, so filters compose with
// plain AND across whatever the listing received.
package filter

import "gorm.io/gorm"

// Scope narrows a listing query. Repositories chain scopes with db.Scopes().
type Scope = func(*gorm.DB) *gorm.DB

// Identity leaves the query untouched (filter without a selected option).
func Identity(db *gorm.DB) *gorm.DB { return db }
