package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	NewHandler().RegisterRoutes(e.Group("/api"))
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAssessRisk_HighRisk(t *testing.T) {
	e := newTestServer()

	rec := post(e, "/api/ai/risk-assessment", `{"patientId":"1","vitals":{"bloodPressure":150,"heartRate":110,"temperature":39.2}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out riskResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Assessment.RiskScore != 60 {
		t.Errorf("expected score 60, got %d", out.Assessment.RiskScore)
	}
	if out.Assessment.RiskLevel != "high" {
		t.Errorf("expected high risk, got %s", out.Assessment.RiskLevel)
	}
	if len(out.Assessment.RiskFactors) != 3 {
		t.Errorf("expected 3 risk factors, got %v", out.Assessment.RiskFactors)
	}
}

func TestAssessRisk_LowRiskWithoutVitals(t *testing.T) {
	e := newTestServer()

	rec := post(e, "/api/ai/risk-assessment", `{"patientId":"1"}`)
	var out riskResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Assessment.RiskLevel != "low" || out.Assessment.RiskScore != 0 {
		t.Errorf("expected low/0, got %s/%d", out.Assessment.RiskLevel, out.Assessment.RiskScore)
	}
	if out.Assessment.RiskFactors == nil {
		t.Error("risk factors should be an empty list, not null")
	}
}

func TestOptimizeSchedule_Deterministic(t *testing.T) {
	e := newTestServer()

	body := `{"appointments":[{"id":"1","time":"09:00 AM"},{"id":"2","time":"10:00 AM"},{"id":"3","time":"11:00 AM"}]}`
	rec := post(e, "/api/ai/optimize-schedule", body)
	var out scheduleResponse
	json.Unmarshal(rec.Body.Bytes(), &out)

	if len(out.OptimizedSchedule) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out.OptimizedSchedule))
	}
	if out.OptimizedSchedule[0]["aiOptimized"] != true {
		t.Error("first appointment should be marked optimized")
	}
	if out.OptimizedSchedule[0]["optimizedTime"] != "09:00 AM" {
		t.Errorf("optimizedTime should echo the original time, got %v", out.OptimizedSchedule[0]["optimizedTime"])
	}
	// Only index 0 is optimized in a 3-entry schedule: reduction 10.
	if out.TotalWaitTimeReduction != 10 {
		t.Errorf("expected total reduction 10, got %d", out.TotalWaitTimeReduction)
	}
	if out.EfficiencyGain != 3.33 {
		t.Errorf("expected efficiency gain 3.33, got %v", out.EfficiencyGain)
	}

	// Same input, same output.
	rec2 := post(e, "/api/ai/optimize-schedule", body)
	var out2 scheduleResponse
	json.Unmarshal(rec2.Body.Bytes(), &out2)
	if out2.TotalWaitTimeReduction != out.TotalWaitTimeReduction {
		t.Error("schedule optimization is not deterministic")
	}
}

func TestOptimizeSchedule_Empty(t *testing.T) {
	e := newTestServer()

	rec := post(e, "/api/ai/optimize-schedule", `{"appointments":[]}`)
	var out scheduleResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.TotalWaitTimeReduction != 0 || out.EfficiencyGain != 0 {
		t.Errorf("expected zeroes for empty schedule, got %+v", out)
	}
}

func TestInsights_Shape(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/ai/insights", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out insightsResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if !out.Success || out.TotalInsights != 3 || len(out.Insights) != 3 {
		t.Fatalf("bad insights payload: %s", rec.Body.String())
	}
	if out.Insights[0].Type != "risk-alert" || out.Insights[0].Severity != "high" {
		t.Errorf("unexpected first insight: %+v", out.Insights[0])
	}
}

func TestAnalyzeSymptoms_Shape(t *testing.T) {
	e := newTestServer()

	rec := post(e, "/api/ai/analyze-symptoms", `{"symptoms":"cough, fatigue","patientHistory":"none"}`)
	var out symptomResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if !out.Success {
		t.Fatalf("bad envelope: %s", rec.Body.String())
	}
	if len(out.Analysis.PossibleConditions) != 3 {
		t.Errorf("expected 3 conditions, got %d", len(out.Analysis.PossibleConditions))
	}
	total := 0
	for _, cond := range out.Analysis.PossibleConditions {
		total += cond.Probability
	}
	if total != 100 {
		t.Errorf("condition probabilities should sum to 100, got %d", total)
	}
}
