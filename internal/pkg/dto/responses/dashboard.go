package responses

import "dentclinic-service/internal/app/models"

type DashboardSummary struct {
	PatientCount          int     `json:"patientCount"`
	TodayAppointmentCount int     `json:"todayAppointmentCount"`
	PendingExpenseCount   int     `json:"pendingExpenseCount"`
	TotalRevenue          float64 `json:"totalRevenue"`
	LastError             string  `json:"lastError,omitempty"`
}

type Collection[T any] struct {
	Items   []T    `json:"items"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type PatientRecord struct {
	Patient       models.Patient        `json:"patient"`
	Bills         []models.Bill         `json:"bills"`
	Prescriptions []models.Prescription `json:"prescriptions"`
	MedicalNotes  []models.MedicalNote  `json:"medicalNotes"`
}
