package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.mu.Lock()
	cl.lastSeen = now
	cl.mu.Unlock()
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return now.Sub(cl.lastSeen)
}

// CORS allows cross-origin requests from origins. "*" or an empty list
// allows any origin.
func CORS(origins ...string) gin.HandlerFunc {
	anyOrigin := len(origins) == 0 || lo.Contains(origins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case anyOrigin:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && lo.Contains(origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, HEAD, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Length, Content-Type, Accept, If-None-Match")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(1024 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			if c.Request.ContentLength > maxBytes {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"status":  "error",
					"message": "Request body too large",
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestLogger logs one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   status,
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
			"bytes":    c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request")
		case status >= http.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

// Recovery turns panics into 500 responses and logs them
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
	})
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = rps
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		limiterInterface, _ := rateLimiters.LoadOrStore(clientIP, &clientLimiter{
			limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
			lastSeen: now,
		})

		cl := limiterInterface.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "Rate limit exceeded. Please slow down your requests.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			rateLimiters.Range(func(key, value interface{}) bool {
				cl := value.(*clientLimiter)
				if cl.idleSince(now) > 10*time.Minute {
					rateLimiters.Delete(key)
				}
				return true
			})
		case <-cleanupStop:
			return
		}
	}
}
