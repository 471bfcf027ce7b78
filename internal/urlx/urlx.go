// Package urlx contains URL extensions: a resource path builder and an
// ordered query string encoder shared by all the API operations.
package urlx

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/opencivics/congress/internal/runtimex"
)

// ErrMissingSchemeOrHost indicates that a base URL is not absolute.
var ErrMissingSchemeOrHost = errors.New("urlx: base URL lacks scheme or host")

// ParseBaseURL parses a base URL, requires it to be absolute, and
// returns it without query, fragment, and trailing slash.
func ParseBaseURL(baseURL string) (string, error) {
	URL, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if URL.Scheme == "" || URL.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingSchemeOrHost, baseURL)
	}
	URL.RawQuery = ""
	URL.Fragment = ""
	return strings.TrimRight(URL.String(), "/"), nil
}

// Path is a resource path below a base URL. The zero value is a path
// without a base, which renders as a relative path.
//
// Path is immutable: [Path.Join] returns a new Path.
type Path struct {
	base     string
	segments []string
}

// NewPath creates a [Path] rooted at base. The base is used verbatim
// except for trailing slashes, which are removed.
func NewPath(base string) Path {
	return Path{base: strings.TrimRight(base, "/")}
}

// Join returns a new [Path] with the given segments appended. Each
// segment is escaped using [url.PathEscape], so a segment never
// introduces additional path components.
func (p Path) Join(segments ...string) Path {
	out := Path{
		base:     p.base,
		segments: make([]string, 0, len(p.segments)+len(segments)),
	}
	out.segments = append(out.segments, p.segments...)
	for _, s := range segments {
		out.segments = append(out.segments, url.PathEscape(s))
	}
	return out
}

// String returns the path.
func (p Path) String() string {
	if len(p.segments) <= 0 {
		return p.base
	}
	return p.base + "/" + strings.Join(p.segments, "/")
}

// WithExtension returns the path with ".ext" appended to its last segment.
func (p Path) WithExtension(ext string) string {
	runtimex.Assert(ext != "", "urlx: empty extension")
	return p.String() + "." + ext
}

// Param is a query string parameter.
type Param struct {
	Name  string
	Value string
}

// Query is an ordered list of query string parameters. Unlike
// [url.Values], encoding preserves the insertion order, so building
// the same query twice yields byte-identical strings.
type Query struct {
	params []Param
}

// Add appends the given parameter.
func (q *Query) Add(name, value string) {
	q.params = append(q.params, Param{Name: name, Value: value})
}

// AddIfNotEmpty appends the given parameter unless value is empty.
func (q *Query) AddIfNotEmpty(name, value string) {
	if value != "" {
		q.Add(name, value)
	}
}

// Extend appends all the parameters of other. A nil other is ignored.
func (q *Query) Extend(other *Query) {
	if other != nil {
		q.params = append(q.params, other.params...)
	}
}

// Len returns the number of parameters. A nil query has no parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// Encode returns the "name=value" pairs joined by "&", in insertion
// order, with names and values escaped using [url.QueryEscape].
func (q *Query) Encode() string {
	if q.Len() <= 0 {
		return ""
	}
	var sb strings.Builder
	for idx, p := range q.params {
		if idx > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// WithQuery appends the encoded query to URL using "?" as the
// separator, or "&" if URL already contains a query.
func WithQuery(URL string, q *Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return URL
	}
	sep := "?"
	if strings.Contains(URL, "?") {
		sep = "&"
	}
	return URL + sep + encoded
}
