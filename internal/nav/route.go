package nav

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Route identifies one screen instance. Key is stable for the lifetime of
// the screen and is recorded as the origin of what it publishes.
type Route struct {
	Key  string
	Name string
	URL  string
}

func NewRoute(name, url string) Route {
	return Route{Key: uuid.NewString(), Name: name, URL: url}
}

// Resolve resolves href against base the way a document link would be.
func Resolve(base, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref.String()
	}
	return b.ResolveReference(ref).String()
}
