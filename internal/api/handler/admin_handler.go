package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kashxsh001/SkillStream/internal/api/metrics"
	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// AdminHandler manages the catalog. Every route sits behind
// middleware.RequireRole(domain.RoleAdmin).
type AdminHandler struct {
	courses ports.CourseService
	log     zerolog.Logger
}

func NewAdminHandler(courses ports.CourseService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{courses: courses, log: log}
}

// ListCourses returns every course.
//
// @Summary      List courses (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Course
// @Failure      403  {object}  map[string]string
// @Router       /admin/courses [get]
func (h *AdminHandler) ListCourses(c echo.Context) error {
	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// CreateCourse adds a course to the catalog.
//
// @Summary      Create a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/courses [post]
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	admin, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("Invalid payload")
	}

	course, err := h.courses.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("create").Inc()
	h.log.Info().Str("admin", admin.Email).Int("code", course.Code).Msg("admin created course")
	return c.JSON(http.StatusCreated, course)
}

// UpdateCourse applies a partial update. Fields left out of the body keep
// their current value.
//
// @Summary      Update a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Course
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/courses/{id} [put]
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	admin, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("Invalid payload")
	}

	course, err := h.courses.Update(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("update").Inc()
	h.log.Info().Str("admin", admin.Email).Str("course_id", course.ID).Msg("admin updated course")
	return c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course.
//
// @Summary      Delete a course
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [delete]
func (h *AdminHandler) DeleteCourse(c echo.Context) error {
	admin, err := ctxUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.courses.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("delete").Inc()
	h.log.Info().Str("admin", admin.Email).Str("course_id", id).Msg("admin deleted course")
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Course deleted successfully"})
}
