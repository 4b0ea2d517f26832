package admin

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hospkit/hospkit/internal/platform/respond"
	"github.com/hospkit/hospkit/internal/platform/storage"
)

// storageTotalMB is the nominal capacity reported by the health endpoint.
const storageTotalMB = 100

type Handler struct {
	users     *UserRepository
	logs      *LogRepository
	store     *storage.Store
	startedAt time.Time
}

func NewHandler(users *UserRepository, logs *LogRepository, store *storage.Store) *Handler {
	return &Handler{
		users:     users,
		logs:      logs,
		store:     store,
		startedAt: time.Now(),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/admin/users", h.ListUsers)
	g.POST("/admin/users", h.CreateUser)
	g.GET("/admin/users/:id", h.GetUser)
	g.PUT("/admin/users/:id", h.UpdateUser)
	g.DELETE("/admin/users/:id", h.DeleteUser)

	g.GET("/admin/logs", h.ListLogs)
	g.POST("/admin/logs", h.AppendLog)

	g.GET("/admin/health", h.Health)
}

// -- Users --

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.GetAll(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	u, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respond.Fail(c, http.StatusNotFound, "User not found")
		}
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, u)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var u SystemUser
	if err := c.Bind(&u); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	created, err := h.users.Create(c.Request().Context(), u)
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Created(c, created)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	updated, err := h.users.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respond.Fail(c, http.StatusNotFound, "User not found")
		}
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, updated)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "User deleted")
}

// -- Logs --

func (h *Handler) ListLogs(c echo.Context) error {
	logs, err := h.logs.GetAll(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, logs)
}

func (h *Handler) AppendLog(c echo.Context) error {
	var l SystemLog
	if err := c.Bind(&l); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	created, err := h.logs.Append(c.Request().Context(), l)
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Created(c, created)
}

// -- Health --

// Health reports a coarse liveness summary: whether the patients collection
// is readable, how much of the data directory is in use, and how many user
// accounts are active.
func (h *Handler) Health(c echo.Context) error {
	if err := h.store.Init(); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}

	database := "connected"
	if !h.store.Readable(storage.PatientsFile) {
		database = "disconnected"
	}

	var usedMB float64
	if bytes, err := h.store.Usage(); err == nil {
		usedMB = math.Round(float64(bytes)/1024/1024*100) / 100
	}
	usedMB = math.Min(usedMB, storageTotalMB)

	activeUsers := 0
	if users, err := h.users.GetAll(c.Request().Context()); err == nil {
		for _, u := range users {
			if u.Status == "active" {
				activeUsers++
			}
		}
	}

	health := SystemHealth{
		Status:      "healthy",
		Uptime:      formatUptime(time.Since(h.startedAt)),
		Database:    database,
		API:         "operational",
		Storage:     storageTotalMB,
		StorageUsed: usedMB,
		ActiveUsers: activeUsers,
		Timestamp:   time.Now().UTC(),
	}
	return respond.OK(c, health)
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
