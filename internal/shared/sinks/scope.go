package sinks

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var ErrUnsupportedScheme = errors.New("unsupported scope scheme")

// Scope identifies where a sink lives: an S3 bucket+prefix for remote
// scopes, a local directory otherwise.
type Scope struct {
	Remote bool
	Bucket string
	Prefix string
	Dir    string
}

// ParseScope interprets a raw scope string. "s3://bucket/prefix" selects the
// remote backend; a bare path (or "file://" URL) selects the local one. Any
// other scheme is rejected before I/O starts.
func ParseScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Scope{}, fmt.Errorf("%w: empty scope", ErrUnsupportedScheme)
	}

	if !strings.Contains(raw, "://") {
		return Scope{Dir: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Scope{}, fmt.Errorf("invalid scope %q: %w", raw, err)
	}

	switch u.Scheme {
	case "s3":
		if u.Host == "" {
			return Scope{}, fmt.Errorf("invalid scope %q: missing bucket", raw)
		}
		return Scope{
			Remote: true,
			Bucket: u.Host,
			Prefix: strings.Trim(u.Path, "/"),
		}, nil
	case "file":
		return Scope{Dir: u.Path}, nil
	default:
		return Scope{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// Sub returns the scope for a named sub-location: a prefix segment for
// remote scopes, a subdirectory for local ones.
func (s Scope) Sub(name string) Scope {
	if s.Remote {
		sub := s
		sub.Prefix = strings.Trim(path.Join(s.Prefix, name), "/")
		return sub
	}
	sub := s
	sub.Dir = path.Join(s.Dir, name)
	return sub
}

// String renders the scope back into the URL/path form accepted by ParseScope.
func (s Scope) String() string {
	if s.Remote {
		if s.Prefix == "" {
			return "s3://" + s.Bucket
		}
		return "s3://" + s.Bucket + "/" + s.Prefix
	}
	return s.Dir
}
