package record

import "github.com/hospkit/hospkit/internal/platform/storage"

const (
	StatusCompleted     = "Completed"
	StatusPendingReview = "Pending Review"
	StatusActive        = "Active"
	StatusArchived      = "Archived"
)

// MedicalRecord is one clinical document attached to a patient visit.
// AISummary is a templated string set by the client, not derived from
// Content.
type MedicalRecord struct {
	storage.Meta
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	RecordType  string `json:"recordType"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Content     string `json:"content,omitempty"`
	FileSize    string `json:"fileSize,omitempty"`
	AISummary   string `json:"aiSummary,omitempty"`
}
