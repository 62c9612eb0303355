package http

import (
	"net/http"
	"strings"

	"tableside/internal/auth"
	"tableside/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// claimsKey is the echo context key the role middleware stores verified
// claims under.
const claimsKey = "auth.claims"

// requireRole verifies the bearer token and checks the caller's role
// against the allowed set. Missing or invalid tokens answer 401, a valid
// token with the wrong role answers 403.
func requireRole(issuer *auth.Issuer, roles ...account.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			if _, ok = allowed[claims.Role]; !ok {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Insufficient role",
				})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// callerClaims returns the verified claims the role middleware stored.
func callerClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}
