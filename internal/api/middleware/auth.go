package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/kashxsh001/SkillStream/internal/api/metrics"
	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

const userKey = "user"

// RequireRole lets the request through only when the bearer token names a
// stored user holding role. The user is stored in the context for handlers.
func RequireRole(gw ports.Gateway, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			user, err := gw.RequireRole(c.Request().Context(), header, role)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AccessDeniedTotal.WithLabelValues(string(role)).Inc()
				}
				return err
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the user stored by RequireRole.
func UserFrom(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(userKey).(*domain.User)
	return u, ok && u != nil
}
