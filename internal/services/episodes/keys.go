package episodes

import "fmt"

// KeyGenerator builds cache keys for generated pages
type KeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator with an optional prefix
func NewKeyGenerator(prefix string) KeyGenerator {
	if prefix == "" {
		prefix = "page"
	}
	return KeyGenerator{prefix: prefix}
}

// Page is the key of one episode page, keyed by slug
func (g KeyGenerator) Page(slug string) string {
	return fmt.Sprintf("%s:episode:%s", g.prefix, slug)
}
