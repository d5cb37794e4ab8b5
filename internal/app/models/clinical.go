package models

type PrescribedMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type Prescription struct {
	ID          int64                  `json:"id"`
	PatientID   int64                  `json:"patientId"`
	DoctorID    int64                  `json:"doctorId"`
	Date        string                 `json:"date"`
	Medications []PrescribedMedication `json:"medications"`
	Notes       string                 `json:"notes,omitempty"`
}

type MedicalNote struct {
	ID                int64    `json:"id"`
	Date              string   `json:"date"`
	Complaints        string   `json:"complaints"`
	OnExamination     string   `json:"onExamination,omitempty"`
	Treatment         string   `json:"treatment,omitempty"`
	PrescriptionTotal *float64 `json:"prescriptionTotal,omitempty"`
	DoctorID          int64    `json:"doctorId"`
}

type AppointmentSettings struct {
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	SlotDuration int    `json:"slotDuration"`
}

type ClinicSettings struct {
	DefaultConsultationFee float64             `json:"defaultConsultationFee"`
	AppointmentSettings    AppointmentSettings `json:"appointmentSettings"`
}
