// Package store is the adapter between the portal and the document store
// holding the system of record. It translates canonical records to and from
// the store's wire shape and exposes one-time fetches, field updates and a
// cancellable live subscription. Retry policy, if any, belongs to the store
// itself; nothing here retries.
package store

import "errors"

// ErrNotFound is returned when a requested identifier has no document. It is
// an expected absent-value result, not a store failure.
var ErrNotFound = errors.New("record not found")
