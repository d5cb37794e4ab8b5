package models

import "time"

type Appointment struct {
	ID               int64   `json:"id"`
	AppointmentDate  string  `json:"appointmentDate"`
	TreatmentDetails string  `json:"treatmentDetails"`
	TreatmentCost    float64 `json:"treatmentCost"`
	Patient          Patient `json:"patient"`
	Doctor           *User   `json:"doctor,omitempty"`
	Staff            *User   `json:"staff,omitempty"`
	Status           string  `json:"status,omitempty"`
}

var appointmentDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ScheduledAt parses AppointmentDate. Timestamps without a zone are read in loc.
func (a Appointment) ScheduledAt(loc *time.Location) (time.Time, bool) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.ParseInLocation(layout, a.AppointmentDate, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
