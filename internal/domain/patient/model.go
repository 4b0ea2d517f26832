package patient

import "github.com/hospkit/hospkit/internal/platform/storage"

// Patient status values surfaced by the UI alerting layer.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusCritical = "critical"
)

// Risk levels assigned by intake or the risk-assessment stub.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Patient is one admitted or registered patient record.
type Patient struct {
	storage.Meta
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address,omitempty"`
	Condition       string   `json:"condition"`
	Status          string   `json:"status"`
	RiskLevel       string   `json:"riskLevel"`
	LastVisit       string   `json:"lastVisit,omitempty"`
	NextAppointment string   `json:"nextAppointment,omitempty"`
	AIInsight       string   `json:"aiInsight,omitempty"`
	MedicalHistory  []string `json:"medicalHistory,omitempty"`
}
