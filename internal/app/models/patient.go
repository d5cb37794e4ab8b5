package models

type Patient struct {
	ID              int64   `json:"id"`
	FullName        string  `json:"fullName"`
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	PhoneNumber     string  `json:"phoneNumber"`
	Address         string  `json:"address"`
	Email           string  `json:"email"`
	MedicalInfo     string  `json:"medicalInfo,omitempty"`
	TreatmentAmount float64 `json:"treatmentAmount"`
	User            *User   `json:"user,omitempty"`
	Doctor          *User   `json:"doctor,omitempty"`
}
