package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken requires a valid bearer token and puts the user id into the
// context under "user_id".
func ValidateToken(c *gin.Context) {
	claims, err := parseToken(c.GetHeader("Authorization"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("authenticated", true)
	c.Set("user_id", userID)
	c.Next()
}

// OptionalToken parses the bearer token when one is sent but lets anonymous
// requests through untouched. The cart endpoints use it to pick between the
// user's persisted cart and the guest cookie cart. A request that presented a
// valid token is marked "authenticated" even when the token carries no user
// id, so downstream handlers can reject it as malformed.
func OptionalToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	claims, err := parseToken(header)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set("authenticated", true)
	if userID, _ := claims["user_id"].(string); userID != "" {
		c.Set("user_id", userID)
	}
	c.Next()
}

func parseToken(header string) (jwt.MapClaims, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" {
		return nil, errors.New("Authorization header is missing")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}
	return claims, nil
}
