package record

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospkit/hospkit/internal/platform/respond"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes exposes the records collection. Only list and create are
// part of the external contract.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/records", h.List)
	g.POST("/records", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	records, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, records)
}

func (h *Handler) Create(c echo.Context) error {
	var m MedicalRecord
	if err := c.Bind(&m); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	created, err := h.repo.Create(c.Request().Context(), m)
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Created(c, created)
}
