// Package dashboard computes the derived counters behind the landing view.
// It performs no writes: every call is a fresh read-and-fold over the
// patient, appointment, and doctor collections.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/hospkit/hospkit/internal/domain/appointment"
	"github.com/hospkit/hospkit/internal/domain/doctor"
	"github.com/hospkit/hospkit/internal/domain/patient"
	"github.com/hospkit/hospkit/internal/platform/respond"
)

// placeholderRevenue is a fixed stub, not derived from data. Billing is not
// part of this system; the dashboard still renders the tile.
const placeholderRevenue = 68000

// Stats is the payload of GET /api/dashboard/stats.
type Stats struct {
	TotalPatients     int `json:"totalPatients"`
	TodayAppointments int `json:"todayAppointments"`
	ActiveDoctors     int `json:"activeDoctors"`
	TotalRevenue      int `json:"totalRevenue"`
	TotalDoctors      int `json:"totalDoctors"`
}

type Handler struct {
	patients     *patient.Repository
	appointments *appointment.Repository
	doctors      *doctor.Repository
	now          func() time.Time
}

func NewHandler(patients *patient.Repository, appointments *appointment.Repository, doctors *doctor.Repository) *Handler {
	return &Handler{
		patients:     patients,
		appointments: appointments,
		doctors:      doctors,
		now:          time.Now,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.compute(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, stats)
}

// compute reads the three collections in parallel and folds the counters.
// An appointment counts as "today" when its date equals the current local
// date and it has not been cancelled.
func (h *Handler) compute(ctx context.Context) (*Stats, error) {
	var (
		patients     []patient.Patient
		appointments []appointment.Appointment
		doctors      []doctor.Doctor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		patients, err = h.patients.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = h.appointments.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		doctors, err = h.doctors.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := h.now().Format(appointment.DateLayout)
	stats := &Stats{
		TotalPatients: len(patients),
		TotalDoctors:  len(doctors),
		TotalRevenue:  placeholderRevenue,
	}
	for _, a := range appointments {
		if a.Date == today && a.Status != appointment.StatusCancelled {
			stats.TodayAppointments++
		}
	}
	for _, d := range doctors {
		if d.Status == doctor.StatusAvailable {
			stats.ActiveDoctors++
		}
	}
	return stats, nil
}
