package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheConfig holds configuration for the page cache middleware
type CacheConfig struct {
	// SharedMaxAge is how long shared caches may serve a page as fresh
	SharedMaxAge time.Duration
	Enabled      bool
}

// bufferedWriter holds the response back so validators can be set
// before anything reaches the client
type bufferedWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedWriter) WriteHeader(status int) {
	w.status = status
}

func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.body.Len() > 0
}

// PageCache marks successful page responses as cacheable by shared caches
// with stale-while-revalidate, adds an ETag and answers conditional
// requests with 304.
func PageCache(config CacheConfig) gin.HandlerFunc {
	cacheControl := CacheControl(config.SharedMaxAge)

	return func(c *gin.Context) {
		if !config.Enabled || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.Next()
			return
		}

		original := c.Writer
		w := &bufferedWriter{
			ResponseWriter: original,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		c.Writer = original

		if w.status != http.StatusOK || w.body.Len() == 0 {
			original.WriteHeader(w.status)
			_, _ = original.Write(w.body.Bytes())
			return
		}

		etag := generateETag(w.body.Bytes())
		original.Header().Set("Cache-Control", cacheControl)
		original.Header().Set("ETag", etag)

		if !shouldBypassCache(c.Request) && etagMatches(c.Request.Header.Get("If-None-Match"), etag) {
			original.WriteHeader(http.StatusNotModified)
			original.WriteHeaderNow()
			return
		}

		original.WriteHeader(http.StatusOK)
		_, _ = original.Write(w.body.Bytes())
	}
}

// CacheControl renders the Cache-Control value for a page with the given
// shared max age
func CacheControl(sharedMaxAge time.Duration) string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", int(sharedMaxAge/time.Second))
}

// shouldBypassCache checks if the client asked for a fresh copy
func shouldBypassCache(req *http.Request) bool {
	cacheControl := req.Header.Get("Cache-Control")
	if cacheControl != "" {
		directives := strings.Split(strings.ToLower(cacheControl), ",")
		for _, directive := range directives {
			directive = strings.TrimSpace(directive)

			if directive == "no-cache" || directive == "no-store" {
				return true
			}

			if strings.HasPrefix(directive, "max-age=") {
				if maxAge := strings.TrimPrefix(directive, "max-age="); maxAge == "0" {
					return true
				}
			}
		}
	}

	// Also check Pragma header for backwards compatibility
	return req.Header.Get("Pragma") == "no-cache"
}

func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// generateETag creates an ETag for the response body
func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(hash[:16]))
}
