package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kashxsh001/SkillStream/internal/api/middleware"
	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// ctxUser returns the caller injected by middleware.RequireRole. Its absence
// means the route was registered without the middleware.
func ctxUser(c echo.Context) (*domain.User, error) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return u, nil
}

func authorization(c echo.Context) string {
	return c.Request().Header.Get(echo.HeaderAuthorization)
}

// parseCode reads an integer course code from a path parameter.
func parseCode(raw string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.Invalid("Invalid course code")
	}
	return code, nil
}
