// Package verification generates the one-time numeric codes mailed out after
// registration.
package verification

import (
	"math/rand"
	"strconv"
)

// NewCode returns a 6-digit code drawn uniformly from 100000-999999, so the
// leading digit is never zero.
func NewCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
