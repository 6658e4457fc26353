package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/light-bringer/optics-service/internal/pkg/clock"
)

// TokenTTL is the lifetime of issued access tokens.
const TokenTTL = time.Hour

const claimsKey = "claims"

var (
	errMissingSecret = errors.New("token secret is not configured")
	errNoEmail       = errors.New("token has no email")
)

// Claims are the access token claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	clock  clock.Clock
}

// NewTokens creates a token issuer signing with secret.
func NewTokens(secret string, clk clock.Clock) *Tokens {
	return &Tokens{secret: []byte(secret), clock: clk}
}

// Issue signs a token for email.
func (t *Tokens) Issue(email string) (string, error) {
	if len(t.secret) == 0 {
		return "", errMissingSecret
	}
	now := t.clock.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a token and checks its signature and expiry.
func (t *Tokens) Verify(token string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, errMissingSecret
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.Email == "" {
		return nil, errNoEmail
	}
	return claims, nil
}

// AdminChecker reports whether an email belongs to an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthHandler serves token issuance and the auth middleware.
type AuthHandler struct {
	tokens *Tokens
	admins AdminChecker
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens *Tokens, admins AdminChecker) *AuthHandler {
	return &AuthHandler{tokens: tokens, admins: admins}
}

// IssueToken handles POST /jwt. It signs whatever email is posted; the
// caller's identity is not verified here.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Email) == "" {
		badRequest(c, "email is required")
		return
	}

	token, err := h.tokens.Issue(strings.TrimSpace(body.Email))
	if err != nil {
		log.Printf("failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// VerifyToken requires a valid bearer token and stores its claims.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "access-unauthorized"})
		return
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "access-unauthorized"})
		return
	}

	c.Set(claimsKey, claims)
	c.Next()
}

// VerifyAdmin requires the verified email to belong to an admin.
// It must run after VerifyToken.
func (h *AuthHandler) VerifyAdmin(c *gin.Context) {
	claims, ok := c.Get(claimsKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "access-unauthorized"})
		return
	}

	isAdmin, err := h.admins.IsAdmin(c.Request.Context(), claims.(*Claims).Email)
	if err != nil {
		log.Printf("failed to check admin role: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify access"})
		return
	}
	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden-access"})
		return
	}
	c.Next()
}

// VerifyOwnerOrAdmin lets a caller reach records filed under their own
// email (the "email" query parameter). Any other email, or none, needs an
// Admin. It must run after VerifyToken.
func (h *AuthHandler) VerifyOwnerOrAdmin(c *gin.Context) {
	if claims, ok := c.Get(claimsKey); ok {
		if email := c.Query("email"); email != "" && strings.EqualFold(email, claims.(*Claims).Email) {
			c.Next()
			return
		}
	}
	h.VerifyAdmin(c)
}
