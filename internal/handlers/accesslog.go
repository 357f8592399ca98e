package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Paths that are not worth logging.
var quietPrefixes = []string{"/static/", "/assets/", "/favicon"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP hides the client address while keeping it stable per salt.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// quiet reports whether path, relative to the site base, is an asset path.
func quiet(path, basePath string) bool {
	path = strings.TrimPrefix(path, strings.TrimSuffix(basePath, "/"))
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// accessLog logs one line per request with a hashed client IP. Requests sent
// with DNT: 1 are logged without any client identifier.
func accessLog(salt, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if quiet(path, basePath) {
			return
		}

		client := "-"
		if c.GetHeader("DNT") != "1" {
			client = hashIP(c.ClientIP(), salt)
		}
		log.Printf("%s %s %d %s client=%s request_id=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start), client, requestID)
	}
}
