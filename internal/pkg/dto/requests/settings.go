package requests

import "dentclinic-service/internal/app/models"

type UpdateSettings struct {
	DefaultConsultationFee float64                    `json:"defaultConsultationFee" validate:"gte=0"`
	AppointmentSettings    models.AppointmentSettings `json:"appointmentSettings"`
}
