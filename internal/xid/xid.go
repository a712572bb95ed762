// Package xid provides the 128-bit identifier type used for event and
// listener ids throughout xpf, backed by github.com/google/uuid.
package xid

import "github.com/google/uuid"

// ID is a 128-bit identifier. The zero value is the nil id and is never
// returned by New.
type ID = uuid.UUID

// New returns a fresh random ID, unique with overwhelming probability over
// the lifetime of a process.
func New() ID {
	return uuid.New()
}

// Nil is the zero ID, used as a sentinel for "no id assigned".
var Nil = uuid.Nil
