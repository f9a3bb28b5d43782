package celes

import "github.com/pkg/errors"

// ErrNotFound is the failure returned by every lookup that matches no
// country. The returned error wraps it together with the offending query, so
// callers test with errors.Is(err, celes.ErrNotFound).
var ErrNotFound = errors.New("country not found")

func notFound(query string) error {
	return errors.Wrapf(ErrNotFound, "%q", query)
}
