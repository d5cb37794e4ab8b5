package requests

type CreatePatient struct {
	FullName        string  `json:"fullName" validate:"required"`
	Age             int     `json:"age,omitempty" validate:"gte=0"`
	Gender          string  `json:"gender,omitempty"`
	PhoneNumber     string  `json:"phoneNumber,omitempty"`
	Address         string  `json:"address,omitempty"`
	Email           string  `json:"email,omitempty" validate:"omitempty,email"`
	MedicalInfo     string  `json:"medicalInfo,omitempty"`
	TreatmentAmount float64 `json:"treatmentAmount,omitempty" validate:"gte=0"`
	DoctorID        *int64  `json:"doctorId,omitempty"`
}

// UpdatePatient is sent as-is; the backend owns merge semantics.
type UpdatePatient struct {
	FullName        *string  `json:"fullName,omitempty"`
	Age             *int     `json:"age,omitempty" validate:"omitempty,gte=0"`
	Gender          *string  `json:"gender,omitempty"`
	PhoneNumber     *string  `json:"phoneNumber,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	MedicalInfo     *string  `json:"medicalInfo,omitempty"`
	TreatmentAmount *float64 `json:"treatmentAmount,omitempty" validate:"omitempty,gte=0"`
	DoctorID        *int64   `json:"doctorId,omitempty"`
}
