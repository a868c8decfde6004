// Package section serves page sections: it reads the upstream document bound
// to a section and normalizes it, one read per call with no caching.
package section

import "errors"

// ErrUnknownSection indicates that no catalog endpoint has the requested name.
var ErrUnknownSection = errors.New("unknown section")
