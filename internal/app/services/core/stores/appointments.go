package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"
	"dentclinic-service/internal/pkg/exceptions"
	"dentclinic-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

type AppointmentStore struct {
	*crudStore[models.Appointment]
}

func NewAppointmentStore(client contracts.AppointmentClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *AppointmentStore {
	return &AppointmentStore{newCRUDStore[models.Appointment](
		constvars.StoreAppointments, constvars.ResourceAppointments, constvars.ErrStoreFetchAppointments, client,
		crudMessages{
			created:      constvars.NotifyAppointmentCreated,
			updated:      constvars.NotifyAppointmentUpdated,
			deleted:      constvars.NotifyAppointmentDeleted,
			createFailed: constvars.NotifyAppointmentCreateFailed,
			updateFailed: constvars.NotifyAppointmentUpdateFailed,
			deleteFailed: constvars.NotifyAppointmentDeleteFailed,
		},
		notifier, sink, logger,
	)}
}

func (s *AppointmentStore) Create(ctx context.Context, input requests.CreateAppointment) error {
	return s.create(ctx, input)
}

func (s *AppointmentStore) Update(ctx context.Context, id int64, patch requests.UpdateAppointment) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed)
}

func (s *AppointmentStore) Complete(ctx context.Context, id int64) error {
	status := constvars.AppointmentStatusCompleted
	return s.update(ctx, id, requests.UpdateAppointment{Status: &status}, constvars.NotifyAppointmentCompleted, s.messages.updateFailed)
}

func (s *AppointmentStore) Cancel(ctx context.Context, id int64) error {
	status := constvars.AppointmentStatusCancelled
	return s.update(ctx, id, requests.UpdateAppointment{Status: &status}, constvars.NotifyAppointmentCancelled, s.messages.updateFailed)
}

func (s *AppointmentStore) Reschedule(ctx context.Context, id int64, input requests.RescheduleAppointment) error {
	status := constvars.AppointmentStatusRescheduled
	date := input.AppointmentDate
	patch := requests.UpdateAppointment{AppointmentDate: &date, Status: &status}
	if err := utils.ValidateStruct(input); err != nil {
		return s.mutator.fail(ctx, mutation{operation: s.name + ".Reschedule", failure: s.messages.updateFailed}, exceptions.ErrInputValidation(err))
	}
	return s.update(ctx, id, patch, constvars.NotifyAppointmentResched, s.messages.updateFailed)
}

// Today returns the cached appointments falling on now's calendar day in
// loc, earliest first.
func (s *AppointmentStore) Today(now time.Time, loc *time.Location) []models.Appointment {
	y, m, d := now.In(loc).Date()
	return s.filterSorted(loc, func(at time.Time, _ models.Appointment) bool {
		ay, am, ad := at.In(loc).Date()
		return ay == y && am == m && ad == d
	})
}

// Overdue returns cached appointments scheduled before now that were neither
// completed nor cancelled, earliest first.
func (s *AppointmentStore) Overdue(now time.Time, loc *time.Location) []models.Appointment {
	return s.filterSorted(loc, func(at time.Time, a models.Appointment) bool {
		if a.Status == constvars.AppointmentStatusCompleted || a.Status == constvars.AppointmentStatusCancelled {
			return false
		}
		return at.Before(now)
	})
}

func (s *AppointmentStore) filterSorted(loc *time.Location, keep func(time.Time, models.Appointment) bool) []models.Appointment {
	type scheduled struct {
		at          time.Time
		appointment models.Appointment
	}
	matches := make([]scheduled, 0)
	for _, appointment := range s.Collection() {
		at, ok := appointment.ScheduledAt(loc)
		if !ok || !keep(at, appointment) {
			continue
		}
		matches = append(matches, scheduled{at: at, appointment: appointment})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].at.Before(matches[j].at)
	})

	result := make([]models.Appointment, len(matches))
	for i, match := range matches {
		result[i] = match.appointment
	}
	return result
}
