// Package admin covers the back-office surface: system user management,
// the capped activity log, and the health report.
package admin

import (
	"time"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// Roles a SystemUser can hold.
const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleReceptionist  = "receptionist"
	RoleLabTechnician = "lab_technician"
)

// SystemUser is a dashboard login, not a clinical identity.
type SystemUser struct {
	storage.Meta
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Department  string   `json:"department,omitempty"`
	Status      string   `json:"status"`
	LastLogin   string   `json:"lastLogin,omitempty"`
	Permissions []string `json:"permissions"`
}

// SystemLog is one activity entry. Logs are append-only and the collection
// keeps only the 100 most recent entries.
type SystemLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *SystemLog) EntityID() string { return l.ID }

func (l *SystemLog) StampNew(id string, now time.Time) {
	l.ID = id
	l.Timestamp = now
}

// StampUpdated is a no-op: log entries are never updated.
func (l *SystemLog) StampUpdated(time.Time) {}

// SystemHealth is the payload of GET /api/admin/health.
type SystemHealth struct {
	Status      string    `json:"status"`
	Uptime      string    `json:"uptime"`
	Database    string    `json:"database"`
	API         string    `json:"api"`
	Storage     float64   `json:"storage"`
	StorageUsed float64   `json:"storageUsed"`
	ActiveUsers int       `json:"activeUsers"`
	Timestamp   time.Time `json:"timestamp"`
}
