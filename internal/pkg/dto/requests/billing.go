package requests

import "dentclinic-service/internal/app/models"

type CreateBill struct {
	PatientID     int64             `json:"patientId" validate:"required,gt=0"`
	AppointmentID *int64            `json:"appointmentId,omitempty"`
	Amount        float64           `json:"amount" validate:"gte=0"`
	Status        string            `json:"status" validate:"required,oneof=paid unpaid overdue"`
	Items         []models.BillItem `json:"items" validate:"required,min=1"`
	CreatedBy     string            `json:"createdBy,omitempty"`
}

type UpdateBill struct {
	Amount         *float64               `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Status         *string                `json:"status,omitempty" validate:"omitempty,oneof=paid unpaid overdue"`
	Items          []models.BillItem      `json:"items,omitempty"`
	PaymentDetails *models.PaymentDetails `json:"paymentDetails,omitempty"`
	ProcessedBy    *string                `json:"processedBy,omitempty"`
}
