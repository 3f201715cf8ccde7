package middleware

import (
	"net/http"
	"strings"

	httpadp "collateralbook/internal/adapter/http"
	"collateralbook/internal/token"

	"github.com/labstack/echo/v4"
)

// JWTAuth rejects requests without a valid bearer access token and stashes
// the caller's identity in the echo context for the handlers.
func JWTAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := tokens.Validate(strings.TrimPrefix(raw, "Bearer "), token.TypeAccess)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set(httpadp.CtxUserID, claims.UserID)
			c.Set(httpadp.CtxUsername, claims.Username)
			return next(c)
		}
	}
}
