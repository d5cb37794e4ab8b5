package requests

type CreateMedication struct {
	Name   string `json:"name" validate:"required"`
	Dosage string `json:"dosage" validate:"required"`
	Form   string `json:"form,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type UpdateMedication struct {
	Name   *string `json:"name,omitempty"`
	Dosage *string `json:"dosage,omitempty"`
	Form   *string `json:"form,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
