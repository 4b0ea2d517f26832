package doctor

import "github.com/hospkit/hospkit/internal/platform/storage"

// Availability states shown on the roster and counted by dashboard stats.
const (
	StatusAvailable = "available"
	StatusBusy      = "busy"
	StatusOffline   = "offline"
)

// Doctor is one staff physician. Patients is a headline count maintained by
// the front desk; it is not reconciled against the appointment collection.
type Doctor struct {
	storage.Meta
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Experience     string  `json:"experience"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Location       string  `json:"location"`
	Status         string  `json:"status"`
	Rating         float64 `json:"rating"`
	Patients       int     `json:"patients"`
	NextAvailable  string  `json:"nextAvailable,omitempty"`
}
