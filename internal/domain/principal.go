package domain

import "strings"

// Principal is the opaque identity of the calling user. It is supplied per
// call and recorded as the owner of every entity it creates.
type Principal string

func (p Principal) String() string { return string(p) }

// IsZero reports whether no identity is present.
func (p Principal) IsZero() bool {
	return strings.TrimSpace(string(p)) == ""
}
