package stores

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/backend"
	"dentclinic-service/internal/app/services/core/access"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"
	"dentclinic-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResource_RefreshReplacesCollection(t *testing.T) {
	calls := 0
	res := NewResource[int]("numbers", "Failed to fetch numbers", func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return []int{1, 2}, nil
		}
		return nil, nil
	}, nil, zap.NewNop())

	assert.NotNil(t, res.Collection())
	assert.Empty(t, res.Collection())

	require.NoError(t, res.Refresh(context.Background()))
	assert.Equal(t, []int{1, 2}, res.Collection())

	require.NoError(t, res.Refresh(context.Background()))
	assert.NotNil(t, res.Collection())
	assert.Empty(t, res.Collection())
	assert.False(t, res.Loading())
	assert.NoError(t, res.Err())
}

func TestResource_FailureKeepsStaleCollection(t *testing.T) {
	fail := false
	var sunk []string
	res := NewResource[string]("names", "Failed to fetch names", func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("")
		}
		return []string{"jane"}, nil
	}, func(store string, err error) {
		sunk = append(sunk, store+": "+err.Error())
	}, zap.NewNop())

	require.NoError(t, res.Refresh(context.Background()))

	fail = true
	err := res.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch names", err.Error())
	assert.Equal(t, []string{"jane"}, res.Collection())
	assert.False(t, res.Loading())
	assert.EqualError(t, res.Err(), "Failed to fetch names")
	assert.Equal(t, []string{"names: Failed to fetch names"}, sunk)

	fail = false
	require.NoError(t, res.Refresh(context.Background()))
	assert.NoError(t, res.Err())
}

func TestResource_LoadingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	res := NewResource[int]("numbers", "Failed to fetch numbers", func(ctx context.Context) ([]int, error) {
		close(started)
		<-release
		return []int{7}, nil
	}, nil, zap.NewNop())

	done := make(chan error)
	go func() { done <- res.Refresh(context.Background()) }()

	<-started
	assert.True(t, res.Loading())
	close(release)
	require.NoError(t, <-done)
	assert.False(t, res.Loading())
	assert.Equal(t, []int{7}, res.Collection())
}

func TestResource_OlderResponseArrivingLastIsDiscarded(t *testing.T) {
	type call struct {
		result  []int
		err     error
		release chan struct{}
	}
	calls := make(chan *call, 2)
	res := NewResource[int]("numbers", "Failed to fetch numbers", func(ctx context.Context) ([]int, error) {
		c := <-calls
		<-c.release
		return c.result, c.err
	}, nil, zap.NewNop())

	first := &call{result: []int{1}, release: make(chan struct{})}
	second := &call{result: []int{2}, release: make(chan struct{})}

	// Sequence numbers are taken before fetch runs, so issue them in order.
	calls <- first
	firstDone := make(chan error)
	go func() { firstDone <- res.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return len(calls) == 0 }, time.Second, time.Millisecond)

	calls <- second
	secondDone := make(chan error)
	go func() { secondDone <- res.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return len(calls) == 0 }, time.Second, time.Millisecond)

	close(second.release)
	require.NoError(t, <-secondDone)
	assert.Equal(t, []int{2}, res.Collection())
	assert.True(t, res.Loading())

	close(first.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, []int{2}, res.Collection())
	assert.False(t, res.Loading())
}

func TestResource_OlderFailureArrivingLastIsDiscarded(t *testing.T) {
	var mu sync.Mutex
	releases := []chan struct{}{make(chan struct{}), make(chan struct{})}
	results := []error{errors.New("backend down"), nil}
	n := 0
	res := NewResource[int]("numbers", "Failed to fetch numbers", func(ctx context.Context) ([]int, error) {
		mu.Lock()
		i := n
		n++
		mu.Unlock()
		<-releases[i]
		return []int{i}, results[i]
	}, nil, zap.NewNop())

	firstDone := make(chan error)
	go func() { firstDone <- res.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { mu.Lock(); defer mu.Unlock(); return n == 1 }, time.Second, time.Millisecond)

	secondDone := make(chan error)
	go func() { secondDone <- res.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { mu.Lock(); defer mu.Unlock(); return n == 2 }, time.Second, time.Millisecond)

	close(releases[1])
	require.NoError(t, <-secondDone)
	close(releases[0])
	assert.Error(t, <-firstDone)

	assert.Equal(t, []int{1}, res.Collection())
	assert.NoError(t, res.Err())
}

func TestPatientStore_CreateThenReadsBackendState(t *testing.T) {
	fake := newFakeBackend()
	provider, notifier := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, provider.Patients.Refresh(ctx))
	assert.Empty(t, provider.Patients.Collection())

	err := provider.Patients.Create(ctx, requests.CreatePatient{FullName: "Jane Doe", Age: 30})
	require.NoError(t, err)

	patients := provider.Patients.Collection()
	require.Len(t, patients, 1)
	assert.Equal(t, "Jane Doe", patients[0].FullName)
	assert.NotZero(t, patients[0].ID)

	last := notifier.last()
	assert.Equal(t, models.NotificationSuccess, last.Level)
	assert.Equal(t, constvars.NotifyPatientCreated, last.Message)
	assert.Equal(t, constvars.ResourcePatients, last.Resource)
}

func TestPatientStore_UpdateAndDeleteReflectedInCollection(t *testing.T) {
	fake := newFakeBackend()
	fake.patients = []models.Patient{{ID: 1, FullName: "Jane Doe"}, {ID: 2, FullName: "John Roe"}}
	provider, _ := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Patients.Refresh(ctx))

	name := "Jane Smith"
	require.NoError(t, provider.Patients.Update(ctx, 1, requests.UpdatePatient{FullName: &name}))
	patients := provider.Patients.Collection()
	require.Len(t, patients, 2)
	assert.Equal(t, "Jane Smith", patients[0].FullName)

	require.NoError(t, provider.Patients.Delete(ctx, 2))
	patients = provider.Patients.Collection()
	require.Len(t, patients, 1)
	assert.Equal(t, int64(1), patients[0].ID)
}

func TestPatientStore_ValidationFailureSkipsBackend(t *testing.T) {
	fake := newFakeBackend()
	provider, notifier := newTestProvider(t, fake)

	err := provider.Patients.Create(context.Background(), requests.CreatePatient{})
	require.Error(t, err)

	customErr, ok := exceptions.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Zero(t, fake.writeCount())

	last := notifier.last()
	assert.Equal(t, models.NotificationError, last.Level)
	assert.Equal(t, customErr.ClientMessage, last.Message)
	assert.Equal(t, err, provider.Patients.Err())
	assert.Equal(t, err, provider.LastError())
}

func TestPatientStore_BackendRejectionKeepsCollection(t *testing.T) {
	fake := newFakeBackend()
	fake.patients = []models.Patient{{ID: 1, FullName: "Jane Doe"}}
	provider, notifier := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Patients.Refresh(ctx))

	fake.failWritesWith(http.StatusConflict)
	err := provider.Patients.Create(ctx, requests.CreatePatient{FullName: "John Roe"})
	require.Error(t, err)

	apiErr, ok := backend.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "backend refused", apiErr.Message)

	assert.Len(t, provider.Patients.Collection(), 1)
	assert.False(t, provider.Patients.Loading())
	assert.Equal(t, err, provider.Patients.Err())
	assert.Equal(t, "backend refused", notifier.last().Message)
	assert.Equal(t, models.NotificationError, notifier.last().Level)
}

func TestPatientStore_RefreshFailureAfterWriteStillSucceeds(t *testing.T) {
	fake := newFakeBackend()
	provider, notifier := newTestProvider(t, fake)
	fake.failList("/patients", http.StatusInternalServerError)

	err := provider.Patients.Create(context.Background(), requests.CreatePatient{FullName: "Jane Doe"})
	require.NoError(t, err)

	assert.Empty(t, provider.Patients.Collection())
	assert.Error(t, provider.Patients.Err())
	assert.Equal(t, models.NotificationSuccess, notifier.last().Level)
}

func TestExpenseStore_ApproveRemovesFromPending(t *testing.T) {
	fake := newFakeBackend()
	fake.expenses = []models.Expense{
		{ID: 41, Description: "Gloves", Amount: 20, Date: "2024-05-01", Approved: true},
		{ID: 42, Description: "Burs", Amount: 55, Date: "2024-05-02"},
	}
	provider, notifier := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Load(ctx))
	require.Len(t, provider.Expenses.Pending.Collection(), 1)

	require.NoError(t, provider.Expenses.Approve(ctx, 42))

	assert.Empty(t, provider.Expenses.Pending.Collection())
	all := provider.Expenses.Collection()
	require.Len(t, all, 2)
	for _, expense := range all {
		assert.True(t, expense.Approved)
	}
	assert.Equal(t, constvars.NotifyExpenseApproved, notifier.last().Message)
}

func TestExpenseStore_RejectAndCreateRefreshPending(t *testing.T) {
	fake := newFakeBackend()
	fake.expenses = []models.Expense{{ID: 42, Description: "Burs", Amount: 55, Date: "2024-05-02"}}
	provider, _ := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Load(ctx))

	require.NoError(t, provider.Expenses.Reject(ctx, 42))
	assert.Empty(t, provider.Expenses.Pending.Collection())
	assert.Empty(t, provider.Expenses.Collection())

	require.NoError(t, provider.Expenses.Create(ctx, requests.CreateExpense{Description: "Masks", Amount: 12.5, Date: "2024-05-03"}))
	assert.Len(t, provider.Expenses.Pending.Collection(), 1)
	assert.Len(t, provider.Expenses.Collection(), 1)
}

func TestExpenseStore_UpdatePartialPatch(t *testing.T) {
	fake := newFakeBackend()
	fake.expenses = []models.Expense{{ID: 42, Description: "Burs", Amount: 55, Date: "2024-05-02"}}
	provider, notifier := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Load(ctx))

	amount := 60.0
	require.NoError(t, provider.Expenses.Update(ctx, 42, requests.UpdateExpense{Amount: &amount}))

	assert.Equal(t, map[string]interface{}{"amount": 60.0}, fake.lastExpensePatch())
	assert.Equal(t, 1, fake.writeCount())

	all := provider.Expenses.Collection()
	require.Len(t, all, 1)
	assert.Equal(t, "Burs", all[0].Description)
	assert.Equal(t, 60.0, all[0].Amount)

	pending := provider.Expenses.Pending.Collection()
	require.Len(t, pending, 1)
	assert.Equal(t, 60.0, pending[0].Amount)
	assert.Equal(t, constvars.NotifyExpenseUpdated, notifier.last().Message)
	assert.NoError(t, provider.Expenses.Err())
}

func TestExpenseStore_UpdateRejectsNonPositiveAmount(t *testing.T) {
	fake := newFakeBackend()
	fake.expenses = []models.Expense{{ID: 42, Description: "Burs", Amount: 55, Date: "2024-05-02"}}
	provider, notifier := newTestProvider(t, fake)

	amount := -5.0
	err := provider.Expenses.Update(context.Background(), 42, requests.UpdateExpense{Amount: &amount})
	require.Error(t, err)
	assert.Zero(t, fake.writeCount())
	assert.Equal(t, models.NotificationError, notifier.last().Level)
}

func TestExpenseStore_DeleteRefreshesPending(t *testing.T) {
	fake := newFakeBackend()
	fake.expenses = []models.Expense{
		{ID: 41, Description: "Gloves", Amount: 20, Date: "2024-05-01"},
		{ID: 42, Description: "Burs", Amount: 55, Date: "2024-05-02"},
	}
	provider, _ := newTestProvider(t, fake)
	ctx := context.Background()
	require.NoError(t, provider.Load(ctx))
	require.Len(t, provider.Expenses.Pending.Collection(), 2)

	require.NoError(t, provider.Expenses.Delete(ctx, 42))

	pending := provider.Expenses.Pending.Collection()
	require.Len(t, pending, 1)
	assert.Equal(t, int64(41), pending[0].ID)
	assert.Len(t, provider.Expenses.Collection(), 1)
}

func TestCRUDStore_RecordInputError(t *testing.T) {
	fake := newFakeBackend()
	provider, notifier := newTestProvider(t, fake)

	inputErr := exceptions.ErrCannotParseJSON(errors.New("unexpected EOF"))
	err := provider.Patients.RecordInputError(context.Background(), inputErr)

	assert.Equal(t, inputErr, err)
	assert.Equal(t, inputErr, provider.Patients.Err())
	assert.Equal(t, inputErr, provider.LastError())
	assert.Equal(t, models.NotificationError, notifier.last().Level)
	assert.Equal(t, constvars.ResourcePatients, notifier.last().Resource)
	assert.Zero(t, fake.writeCount())
}

func TestExpenseStore_ApproveUnknownReportsBackendMessage(t *testing.T) {
	fake := newFakeBackend()
	provider, notifier := newTestProvider(t, fake)

	err := provider.Expenses.Approve(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "Expense not found", notifier.last().Message)
}

func TestAppointmentStore_StatusTransitions(t *testing.T) {
	fake := newFakeBackend()
	fake.appointments = []models.Appointment{
		{ID: 1, AppointmentDate: "2024-05-01T09:00:00", Status: constvars.AppointmentStatusScheduled},
		{ID: 2, AppointmentDate: "2024-05-01T10:00:00", Status: constvars.AppointmentStatusScheduled},
		{ID: 3, AppointmentDate: "2024-05-01T11:00:00", Status: constvars.AppointmentStatusScheduled},
	}
	provider, notifier := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, provider.Appointments.Complete(ctx, 1))
	assert.Equal(t, constvars.NotifyAppointmentCompleted, notifier.last().Message)
	require.NoError(t, provider.Appointments.Cancel(ctx, 2))
	require.NoError(t, provider.Appointments.Reschedule(ctx, 3, requests.RescheduleAppointment{AppointmentDate: "2024-05-08T11:00:00"}))

	byID := make(map[int64]models.Appointment)
	for _, appointment := range provider.Appointments.Collection() {
		byID[appointment.ID] = appointment
	}
	assert.Equal(t, constvars.AppointmentStatusCompleted, byID[1].Status)
	assert.Equal(t, constvars.AppointmentStatusCancelled, byID[2].Status)
	assert.Equal(t, constvars.AppointmentStatusRescheduled, byID[3].Status)
	assert.Equal(t, "2024-05-08T11:00:00", byID[3].AppointmentDate)

	writes := fake.writeCount()
	err := provider.Appointments.Reschedule(ctx, 3, requests.RescheduleAppointment{})
	require.Error(t, err)
	assert.Equal(t, writes, fake.writeCount())
}

func TestAppointmentStore_TodayAndOverdue(t *testing.T) {
	loc := time.FixedZone("clinic", 5*3600+1800)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, loc)

	fake := newFakeBackend()
	fake.appointments = []models.Appointment{
		{ID: 1, AppointmentDate: "2024-05-01T15:00:00"},
		{ID: 2, AppointmentDate: "2024-05-01T08:30:00"},
		{ID: 3, AppointmentDate: "2024-04-30T09:00:00"},
		{ID: 4, AppointmentDate: "2024-04-29T09:00:00", Status: constvars.AppointmentStatusCompleted},
		{ID: 5, AppointmentDate: "2024-04-28T09:00:00", Status: constvars.AppointmentStatusCancelled},
		{ID: 6, AppointmentDate: "not a date"},
		{ID: 7, AppointmentDate: "2024-05-02"},
	}
	provider, _ := newTestProvider(t, fake)
	require.NoError(t, provider.Appointments.Refresh(context.Background()))

	ids := func(appointments []models.Appointment) []int64 {
		out := make([]int64, 0, len(appointments))
		for _, appointment := range appointments {
			out = append(out, appointment.ID)
		}
		return out
	}

	assert.Equal(t, []int64{2, 1}, ids(provider.Appointments.Today(now, loc)))
	assert.Equal(t, []int64{3, 2}, ids(provider.Appointments.Overdue(now, loc)))
}

func TestProvider_LoadContinuesPastFailingStore(t *testing.T) {
	fake := newFakeBackend()
	fake.patients = []models.Patient{{ID: 1, FullName: "Jane Doe"}}
	fake.bills = []models.Bill{{ID: 1, PatientID: 1, Amount: 150}, {ID: 2, PatientID: 1, Amount: 50.5}}
	fake.failList("/medications", http.StatusServiceUnavailable)
	provider, _ := newTestProvider(t, fake)

	err := provider.Load(context.Background())
	require.Error(t, err)

	assert.Len(t, provider.Patients.Collection(), 1)
	assert.Len(t, provider.Bills.Collection(), 2)
	assert.Error(t, provider.Medications.Err())
	assert.Equal(t, provider.Medications.Err(), provider.LastError())
}

func TestProvider_SummaryDependsOnRole(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, loc)

	fake := newFakeBackend()
	fake.patients = []models.Patient{{ID: 1}, {ID: 2}}
	fake.appointments = []models.Appointment{{ID: 1, AppointmentDate: "2024-05-01T09:00:00"}}
	fake.expenses = []models.Expense{{ID: 1, Amount: 10}, {ID: 2, Amount: 5, Approved: true}}
	fake.bills = []models.Bill{{ID: 1, Amount: 100}, {ID: 2, Amount: 25}}
	provider, _ := newTestProvider(t, fake)
	require.NoError(t, provider.Load(context.Background()))

	staff := provider.Summary(now, loc, access.RoleStaff)
	assert.Equal(t, 2, staff.PatientCount)
	assert.Equal(t, 1, staff.TodayAppointmentCount)
	assert.Equal(t, 1, staff.PendingExpenseCount)
	assert.Equal(t, 125.0, staff.TotalRevenue)
	assert.Empty(t, staff.LastError)

	admin := provider.Summary(now, loc, access.RoleAdmin)
	assert.Equal(t, 2, admin.PatientCount)
	assert.Zero(t, admin.TotalRevenue)

	doctor := provider.Summary(now, loc, access.RoleDoctor)
	assert.Equal(t, 1, doctor.TodayAppointmentCount)
	assert.Zero(t, doctor.PatientCount)
	assert.Zero(t, doctor.PendingExpenseCount)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Patient not found", UserMessage(&backend.APIError{Status: 404, Message: "Patient not found"}, "fallback"))
	assert.Equal(t, "fallback", UserMessage(errors.New("boom"), "fallback"))

	customErr := exceptions.ErrNotAllowed(nil)
	assert.Equal(t, customErr.ClientMessage, UserMessage(customErr, "fallback"))
}
