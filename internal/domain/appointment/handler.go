package appointment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospkit/hospkit/internal/platform/respond"
	"github.com/hospkit/hospkit/internal/platform/storage"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.List)
	g.POST("/appointments", h.Create)
	g.GET("/appointments/:id", h.Get)
	g.PUT("/appointments/:id", h.Update)
	g.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	appointments, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, appointments)
}

func (h *Handler) Get(c echo.Context) error {
	a, err := h.repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respond.Fail(c, http.StatusNotFound, "Appointment not found")
		}
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, a)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	created, err := h.repo.Create(c.Request().Context(), a)
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Created(c, created)
}

func (h *Handler) Update(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	updated, err := h.repo.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respond.Fail(c, http.StatusNotFound, "Appointment not found")
		}
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, updated)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Appointment deleted")
}
