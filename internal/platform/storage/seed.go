package storage

import "time"

// seedRecords builds the default content for every collection. Seeds are
// plain maps: the store stays entity-agnostic and the domain packages keep
// ownership of the typed models.
func seedRecords() map[string][]map[string]any {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	patients := []map[string]any{
		{
			"id":              "1",
			"name":            "John Doe",
			"age":             45,
			"gender":          "Male",
			"phone":           "+1 234-567-8900",
			"email":           "john.doe@email.com",
			"condition":       "Hypertension",
			"status":          "active",
			"riskLevel":       "low",
			"lastVisit":       "2024-01-15",
			"nextAppointment": "2024-01-25",
			"aiInsight":       "Stable condition, medication compliance good",
			"createdAt":       now,
			"updatedAt":       now,
		},
		{
			"id":              "2",
			"name":            "Sarah Wilson",
			"age":             32,
			"gender":          "Female",
			"phone":           "+1 234-567-8901",
			"email":           "sarah.w@email.com",
			"condition":       "Diabetes Type 2",
			"status":          "active",
			"riskLevel":       "medium",
			"lastVisit":       "2024-01-14",
			"nextAppointment": "2024-01-20",
			"aiInsight":       "AI suggests closer monitoring of blood sugar levels",
			"createdAt":       now,
			"updatedAt":       now,
		},
	}

	doctors := []map[string]any{
		{
			"id":             "1",
			"name":           "Dr. Sarah Smith",
			"specialization": "Cardiologist",
			"experience":     "15 years",
			"email":          "sarah.smith@hospital.com",
			"phone":          "+1 234-567-8900",
			"location":       "Cardiology Wing, Floor 3",
			"status":         "available",
			"rating":         4.9,
			"patients":       245,
			"nextAvailable":  "2:00 PM",
			"createdAt":      now,
			"updatedAt":      now,
		},
		{
			"id":             "2",
			"name":           "Dr. Michael Johnson",
			"specialization": "Neurologist",
			"experience":     "12 years",
			"email":          "michael.j@hospital.com",
			"phone":          "+1 234-567-8901",
			"location":       "Neurology Wing, Floor 2",
			"status":         "busy",
			"rating":         4.8,
			"patients":       189,
			"nextAvailable":  "4:30 PM",
			"createdAt":      now,
			"updatedAt":      now,
		},
	}

	appointments := []map[string]any{
		{
			"id":          "1",
			"patientId":   "1",
			"patientName": "John Doe",
			"doctorId":    "1",
			"doctorName":  "Dr. Sarah Smith",
			"date":        today,
			"time":        "09:00 AM",
			"duration":    "30 min",
			"type":        "Regular Checkup",
			"status":      "scheduled",
			"aiOptimized": true,
			"createdAt":   now,
			"updatedAt":   now,
		},
	}

	users := []map[string]any{
		{
			"id":          "1",
			"name":        "Admin User",
			"email":       "admin@hospital.com",
			"role":        "admin",
			"status":      "active",
			"permissions": []string{"all"},
			"createdAt":   now,
			"updatedAt":   now,
		},
	}

	return map[string][]map[string]any{
		PatientsFile:     patients,
		DoctorsFile:      doctors,
		AppointmentsFile: appointments,
		RecordsFile:      {},
		UsersFile:        users,
		LogsFile:         {},
		InsightsFile:     {},
	}
}
