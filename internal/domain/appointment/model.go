package appointment

import "github.com/hospkit/hospkit/internal/platform/storage"

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// DateLayout is the wire format of the Date field.
const DateLayout = "2006-01-02"

// Appointment links a patient and a doctor at a point in time. PatientName
// and DoctorName are snapshots taken at booking time; renaming the referenced
// patient or doctor does not cascade here.
type Appointment struct {
	storage.Meta
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	AIOptimized bool   `json:"aiOptimized,omitempty"`
}
