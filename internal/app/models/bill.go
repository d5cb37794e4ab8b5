package models

type BillItem struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type PaymentDetails struct {
	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod"`
}

type Bill struct {
	ID             int64           `json:"id"`
	PatientID      int64           `json:"patientId"`
	AppointmentID  *int64          `json:"appointmentId,omitempty"`
	Amount         float64         `json:"amount"`
	Status         string          `json:"status"`
	IssuedAt       string          `json:"issuedAt"`
	Items          []BillItem      `json:"items"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	CreatedBy      string          `json:"createdBy"`
	ProcessedBy    string          `json:"processedBy,omitempty"`
}
