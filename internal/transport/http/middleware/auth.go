package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	errAccessDenied = "Access Denied"
	errTokenInvalid = "Invalid Token"
)

// Auth validates a Bearer JWT (HS256, shared secret) and sets "userID" and
// "email" in the gin context.
//
// A missing or non-Bearer Authorization header is 401; a token that is
// present but fails signature or expiry checks is 403. Expiry and bad
// signature are not distinguished in the response.
func Auth(hmacKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errAccessDenied})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		tok, err := jwt.Parse([]byte(rawToken), jwt.WithKey(jwa.HS256, hmacKey), jwt.WithValidate(true))
		if err != nil || tok == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errTokenInvalid})
			return
		}

		userID, err := strconv.ParseInt(tok.Subject(), 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errTokenInvalid})
			return
		}

		email, _ := tok.Get("email")
		emailStr, _ := email.(string)

		c.Set("userID", userID)
		c.Set("email", emailStr)
		c.Next()
	}
}
