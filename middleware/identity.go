package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CustomerIDHeader = "X-Customer-ID"
	PainterIDHeader  = "X-Painter-ID"

	customerIDKey = "customerID"
	painterIDKey  = "painterID"
)

// Identity copies the caller ids from the request headers into the context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(CustomerIDHeader)); id != "" {
			c.Set(customerIDKey, id)
		}
		if id := strings.TrimSpace(c.GetHeader(PainterIDHeader)); id != "" {
			c.Set(painterIDKey, id)
		}
		c.Next()
	}
}

// RequireCustomer rejects requests that do not identify a customer.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CustomerID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing " + CustomerIDHeader + " header"})
			return
		}
		c.Next()
	}
}

func CustomerID(c *gin.Context) string {
	return c.GetString(customerIDKey)
}

// PainterID returns the painter from the header, falling back to the
// painterId query parameter.
func PainterID(c *gin.Context) string {
	if id := c.GetString(painterIDKey); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("painterId"))
}
