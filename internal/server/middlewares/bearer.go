package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/pinpost/internal/pperror"
)

// CurrentTokenContextKey is the key to retrieve the bearer token from echo.Context.
const CurrentTokenContextKey = "current_token"

// A TokenResolver checks a bearer token and returns an error when the token
// must be rejected. It is the extension point for a real authentication system.
type TokenResolver func(token string) error

// AnyToken accepts any non-empty bearer token.
// It is a placeholder capability check, not an authentication system.
func AnyToken(string) error {
	return nil
}

// Bearer returns a middleware enforcing the `Authorization: Bearer <token>`
// header. The token is stored into echo.Context for handlers.
func Bearer(resolve TokenResolver) echo.MiddlewareFunc {
	if resolve == nil {
		resolve = AnyToken
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(echo.HeaderAuthorization)
			if authorization == "" {
				return c.JSON(http.StatusUnauthorized,
					pperror.Unauthenticated("Missing Authorization header"))
			}

			parts := strings.Split(authorization, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.JSON(http.StatusUnauthorized,
					pperror.Unauthenticated("Invalid Authorization header format. Use 'Bearer your_token'"))
			}

			token := parts[1]
			if token == "" {
				return c.JSON(http.StatusUnauthorized,
					pperror.Unauthenticated("Empty token provided"))
			}

			if err := resolve(token); err != nil {
				return c.JSON(http.StatusUnauthorized,
					pperror.Unauthenticated("Invalid token provided"))
			}

			c.Set(CurrentTokenContextKey, token)
			return next(c)
		}
	}
}
