package requests

type CreateAppointment struct {
	AppointmentDate  string  `json:"appointmentDate" validate:"required"`
	TreatmentDetails string  `json:"treatmentDetails,omitempty"`
	TreatmentCost    float64 `json:"treatmentCost,omitempty" validate:"gte=0"`
	PatientID        int64   `json:"patientId" validate:"required,gt=0"`
	DoctorID         *int64  `json:"doctorId,omitempty"`
	StaffID          *int64  `json:"staffId,omitempty"`
}

type UpdateAppointment struct {
	AppointmentDate  *string  `json:"appointmentDate,omitempty"`
	TreatmentDetails *string  `json:"treatmentDetails,omitempty"`
	TreatmentCost    *float64 `json:"treatmentCost,omitempty" validate:"omitempty,gte=0"`
	PatientID        *int64   `json:"patientId,omitempty" validate:"omitempty,gt=0"`
	DoctorID         *int64   `json:"doctorId,omitempty"`
	StaffID          *int64   `json:"staffId,omitempty"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

type RescheduleAppointment struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"`
}
