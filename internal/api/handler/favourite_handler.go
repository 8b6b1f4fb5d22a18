package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kashxsh001/SkillStream/internal/api/metrics"
	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// FavouriteHandler serves a user's favourites. The caller is identified by
// the bearer token, or by an email in the query or body for older clients.
type FavouriteHandler struct {
	gateway    ports.Gateway
	favourites ports.FavouriteService
}

func NewFavouriteHandler(gateway ports.Gateway, favourites ports.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{gateway: gateway, favourites: favourites}
}

// List returns the caller's favourite courses.
//
// @Summary      List favourites
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Caller email when no token is sent"
// @Success      200    {array}   domain.Course
// @Failure      401    {object}  map[string]string
// @Router       /favourites [get]
func (h *FavouriteHandler) List(c echo.Context) error {
	user, err := h.gateway.ResolveUser(c.Request().Context(), authorization(c), c.QueryParam("email"))
	if err != nil {
		return err
	}

	courses, err := h.favourites.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Add favourites a course code.
//
// @Summary      Add a favourite
// @Tags         favourites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavouriteRequest  true  "Course code"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /favourites [post]
func (h *FavouriteHandler) Add(c echo.Context) error {
	var req addFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("Invalid payload")
	}

	user, err := h.gateway.ResolveUser(c.Request().Context(), authorization(c), req.Email)
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.favourites.Add(c.Request().Context(), user, *req.Code); err != nil {
		return err
	}

	metrics.FavouriteMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: "created"})
}

// Remove deletes a favourite.
//
// @Summary      Remove a favourite
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Param        code   path      int     true   "Course code"
// @Param        email  query     string  false  "Caller email when no token is sent"
// @Success      200    {object}  statusResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /favourites/{code} [delete]
func (h *FavouriteHandler) Remove(c echo.Context) error {
	code, err := parseCode(c.Param("code"))
	if err != nil {
		return err
	}

	user, err := h.gateway.ResolveUser(c.Request().Context(), authorization(c), c.QueryParam("email"))
	if err != nil {
		return err
	}

	if err := h.favourites.Remove(c.Request().Context(), user, code); err != nil {
		return err
	}

	metrics.FavouriteMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "delete successful"})
}
