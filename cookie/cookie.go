// Package cookie builds Set-Cookie response header values and extracts
// named values from Cookie request header values. It applies no validation,
// escaping or quoting anywhere; RFC 6265 token and octet restrictions are
// the caller's responsibility.
package cookie

import (
	"strconv"
	"strings"
)

// Attribute is one rendered cookie attribute. Construct values with the
// functions and variables below; the set is closed.
type Attribute struct{ text string }

// SameSite renders as "SameSite=v".
func SameSite(v string) Attribute { return Attribute{"SameSite=" + v} }

// Path renders as "Path=v".
func Path(v string) Attribute { return Attribute{"Path=" + v} }

// Domain renders as "Domain=v".
func Domain(v string) Attribute { return Attribute{"Domain=" + v} }

// MaxAge renders as "Max-Age=n", n in decimal seconds.
func MaxAge(seconds int) Attribute { return Attribute{"Max-Age=" + strconv.Itoa(seconds)} }

// Expires renders as "Expires=s". The date string is passed through as-is.
func Expires(dateString string) Attribute { return Attribute{"Expires=" + dateString} }

// Flag attributes render bare, with no "=".
var (
	Secure   = Attribute{"Secure"}
	HTTPOnly = Attribute{"HttpOnly"}
)

// String returns the attribute as it appears in a Set-Cookie value.
func (a Attribute) String() string { return a.text }

// Cookie is the input to ResponseString. Attribute order is caller
// controlled and preserved in the output.
type Cookie struct {
	Name       string
	Value      string
	Attributes []Attribute
}

// ResponseString renders the cookie as a Set-Cookie header value:
// name=value followed by each attribute, joined with "; ".
func (c Cookie) ResponseString() string {
	parts := make([]string, 0, len(c.Attributes)+1)
	parts = append(parts, c.Name+"="+c.Value)
	for _, a := range c.Attributes {
		parts = append(parts, a.text)
	}
	return strings.Join(parts, "; ")
}

// Get extracts the named cookie's value from a Cookie request header value.
// Only the first segment starting with name+"=" counts; duplicate names
// later in the header are ignored. The reported value is the matched
// segment with every occurrence of name+"=" removed, not a strict prefix
// strip: Get("a", "a=za=1") returns "z1". Existing consumers depend on
// this, so it stays.
func Get(name, header string) (string, bool) {
	prefix := name + "="
	for _, segment := range strings.Split(header, "; ") {
		if strings.HasPrefix(segment, prefix) {
			return strings.ReplaceAll(segment, prefix, ""), true
		}
	}
	return "", false
}
