// Package ai serves the assistant endpoints the dashboard renders as "AI"
// features. They are deterministic stub computations over the request
// payload; the JSON shapes are an external contract the UI depends on, the
// numbers are not medical advice.
package ai

import (
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hospkit/hospkit/internal/platform/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai/analyze-symptoms", h.AnalyzeSymptoms)
	g.POST("/ai/risk-assessment", h.AssessRisk)
	g.POST("/ai/optimize-schedule", h.OptimizeSchedule)
	g.GET("/ai/insights", h.Insights)
}

// -- Symptom analysis --

type symptomRequest struct {
	Symptoms       string `json:"symptoms"`
	PatientHistory string `json:"patientHistory"`
}

type condition struct {
	Condition   string `json:"condition"`
	Probability int    `json:"probability"`
	Description string `json:"description"`
}

type symptomAnalysis struct {
	PossibleConditions []condition `json:"possibleConditions"`
	RecommendedActions []string    `json:"recommendedActions"`
	RiskLevel          string      `json:"riskLevel"`
	AIConfidence       float64     `json:"aiConfidence"`
}

type symptomResponse struct {
	Success  bool            `json:"success"`
	Analysis symptomAnalysis `json:"analysis"`
}

func (h *Handler) AnalyzeSymptoms(c echo.Context) error {
	var req symptomRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, "Failed to analyze symptoms")
	}

	analysis := symptomAnalysis{
		PossibleConditions: []condition{
			{Condition: "Common Cold", Probability: 65, Description: "Mild symptoms consistent with common cold"},
			{Condition: "Seasonal Flu", Probability: 25, Description: "Some symptoms match seasonal flu patterns"},
			{Condition: "Allergies", Probability: 10, Description: "Possible allergic reaction"},
		},
		RecommendedActions: []string{
			"Monitor symptoms for 2-3 days",
			"Get rest and stay hydrated",
			"Schedule follow-up if symptoms worsen",
		},
		RiskLevel:    "low",
		AIConfidence: 0.87,
	}
	return c.JSON(http.StatusOK, symptomResponse{Success: true, Analysis: analysis})
}

// -- Risk assessment --

type vitals struct {
	BloodPressure float64 `json:"bloodPressure"`
	HeartRate     float64 `json:"heartRate"`
	Temperature   float64 `json:"temperature"`
}

type riskRequest struct {
	PatientID string   `json:"patientId"`
	Vitals    vitals   `json:"vitals"`
	History   []string `json:"history"`
}

type riskAssessment struct {
	RiskLevel       string    `json:"riskLevel"`
	RiskScore       int       `json:"riskScore"`
	RiskFactors     []string  `json:"riskFactors"`
	Recommendations []string  `json:"recommendations"`
	AIConfidence    float64   `json:"aiConfidence"`
	Timestamp       time.Time `json:"timestamp"`
}

type riskResponse struct {
	Success    bool           `json:"success"`
	Assessment riskAssessment `json:"assessment"`
}

// AssessRisk scores vitals against fixed thresholds. Score bands: >=40 high,
// >=20 medium, else low.
func (h *Handler) AssessRisk(c echo.Context) error {
	var req riskRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, "Failed to assess risk")
	}

	factors := []string{}
	score := 0
	if req.Vitals.BloodPressure > 140 {
		factors = append(factors, "Elevated blood pressure")
		score += 20
	}
	if req.Vitals.HeartRate > 100 {
		factors = append(factors, "Elevated heart rate")
		score += 15
	}
	if req.Vitals.Temperature > 38.5 {
		factors = append(factors, "High fever")
		score += 25
	}

	level := "low"
	advice := "Continue routine checkups"
	switch {
	case score >= 40:
		level = "high"
		advice = "Immediate medical attention recommended"
	case score >= 20:
		level = "medium"
		advice = "Close monitoring advised"
	}

	assessment := riskAssessment{
		RiskLevel:   level,
		RiskScore:   score,
		RiskFactors: factors,
		Recommendations: []string{
			advice,
			"Maintain current medication schedule",
			"Schedule follow-up within 7 days",
		},
		AIConfidence: 0.92,
		Timestamp:    time.Now().UTC(),
	}
	return c.JSON(http.StatusOK, riskResponse{Success: true, Assessment: assessment})
}

// -- Schedule optimization --

type scheduleRequest struct {
	Appointments []map[string]any `json:"appointments"`
}

type scheduleResponse struct {
	Success                bool             `json:"success"`
	OptimizedSchedule      []map[string]any `json:"optimizedSchedule"`
	TotalWaitTimeReduction int              `json:"totalWaitTimeReduction"`
	EfficiencyGain         float64          `json:"efficiencyGain"`
}

// OptimizeSchedule annotates every third appointment as optimized with an
// index-derived wait-time reduction between 10 and 39 minutes.
func (h *Handler) OptimizeSchedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusInternalServerError, "Failed to optimize schedule")
	}

	optimized := make([]map[string]any, 0, len(req.Appointments))
	total := 0
	for i, apt := range req.Appointments {
		out := make(map[string]any, len(apt)+3)
		for k, v := range apt {
			out[k] = v
		}
		reduction := 10 + (i*7)%30
		out["optimizedTime"] = apt["time"]
		out["waitTimeReduction"] = reduction
		out["aiOptimized"] = i%3 == 0
		if i%3 == 0 {
			total += reduction
		}
		optimized = append(optimized, out)
	}

	gain := 0.0
	if len(req.Appointments) > 0 {
		gain = math.Round(float64(total)/float64(len(req.Appointments))*100) / 100
	}
	return c.JSON(http.StatusOK, scheduleResponse{
		Success:                true,
		OptimizedSchedule:      optimized,
		TotalWaitTimeReduction: total,
		EfficiencyGain:         gain,
	})
}

// -- Insights --

type insight struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
}

type insightsResponse struct {
	Success       bool      `json:"success"`
	Insights      []insight `json:"insights"`
	TotalInsights int       `json:"totalInsights"`
}

func (h *Handler) Insights(c echo.Context) error {
	now := time.Now().UTC()
	insights := []insight{
		{
			ID:          1,
			Type:        "risk-alert",
			Title:       "High Priority Risk Detection",
			Description: "AI identified 3 patients with elevated risk factors requiring immediate attention",
			Severity:    "high",
			Timestamp:   now,
		},
		{
			ID:          2,
			Type:        "optimization",
			Title:       "Schedule Optimization Opportunity",
			Description: "Rescheduling 5 appointments could reduce patient wait times by 30%",
			Severity:    "medium",
			Timestamp:   now,
		},
		{
			ID:          3,
			Type:        "prediction",
			Title:       "Patient Flow Prediction",
			Description: "AI predicts 45% increase in appointments for next week",
			Severity:    "low",
			Timestamp:   now,
		},
	}
	return c.JSON(http.StatusOK, insightsResponse{
		Success:       true,
		Insights:      insights,
		TotalInsights: len(insights),
	})
}
