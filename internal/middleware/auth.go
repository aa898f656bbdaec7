package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/auth"
	"bistro-boss-api/internal/service"
)

const claimsKey = "claims"

// VerifyToken is the outer gate: it rejects requests without a valid,
// unexpired bearer token and attaches the decoded claims to the request.
func VerifyToken(manager *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims, err := manager.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// VerifyAdmin resolves the caller's role from the store. It must sit after
// VerifyToken in the chain. An unknown user is simply not an admin.
func VerifyAdmin(userService service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			isAdmin, err := userService.IsAdmin(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}

func ClaimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}
