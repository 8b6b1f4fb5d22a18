package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kashxsh001/SkillStream/internal/api/metrics"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// CourseHandler serves the public catalog.
type CourseHandler struct {
	courses ports.CourseService
}

func NewCourseHandler(courses ports.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List returns every course.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   domain.Course
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Search filters the catalog. A query starting with '#' matches tags;
// anything else matches title, description or provider.
//
// @Summary      Search courses
// @Tags         courses
// @Produce      json
// @Param        query  query     string  false  "Search text, or #tag"
// @Success      200    {array}   domain.Course
// @Router       /courses/search [get]
func (h *CourseHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	metrics.CourseSearchesTotal.WithLabelValues(searchMode(query)).Inc()

	courses, err := h.courses.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

func searchMode(query string) string {
	q := strings.TrimSpace(query)
	switch {
	case q == "":
		return "all"
	case strings.HasPrefix(q, "#"):
		return "tag"
	default:
		return "text"
	}
}
