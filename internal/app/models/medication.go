package models

type Medication struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Form   string `json:"form,omitempty"`
	Notes  string `json:"notes,omitempty"`
}
