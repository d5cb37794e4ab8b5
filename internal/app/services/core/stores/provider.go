package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/services/core/access"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Clients bundles the backend collections the provider caches.
type Clients struct {
	Patients     contracts.PatientClient
	Appointments contracts.AppointmentClient
	Expenses     contracts.ExpenseClient
	Users        contracts.UserClient
	Bills        contracts.BillClient
	Medications  contracts.MedicationClient
}

// Provider owns one store per resource for the whole process and tracks the
// most recent error raised by any of them.
type Provider struct {
	Patients     *PatientStore
	Appointments *AppointmentStore
	Expenses     *ExpenseStore
	Users        *UserStore
	Bills        *BillStore
	Medications  *MedicationStore
	Log          *zap.Logger

	mu      sync.RWMutex
	lastErr error
}

func NewProvider(clients Clients, notifier contracts.Notifier, logger *zap.Logger) *Provider {
	p := &Provider{Log: logger}
	sink := p.recordError
	p.Patients = NewPatientStore(clients.Patients, notifier, sink, logger)
	p.Appointments = NewAppointmentStore(clients.Appointments, notifier, sink, logger)
	p.Expenses = NewExpenseStore(clients.Expenses, notifier, sink, logger)
	p.Users = NewUserStore(clients.Users, notifier, sink, logger)
	p.Bills = NewBillStore(clients.Bills, notifier, sink, logger)
	p.Medications = NewMedicationStore(clients.Medications, notifier, sink, logger)
	return p
}

func (p *Provider) recordError(store string, err error) {
	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()

	p.Log.Debug("stores.Provider recorded error",
		zap.String(constvars.LoggingStoreKey, store),
		zap.Error(err),
	)
}

// LastError is the latest error recorded by any store, nil if none.
func (p *Provider) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

func (p *Provider) refreshers() []refresher {
	return []refresher{
		p.Patients,
		p.Appointments,
		p.Expenses,
		p.Expenses.Pending,
		p.Users,
		p.Bills,
		p.Medications,
	}
}

// Load refreshes every store once, in parallel. A failing store does not
// stop the others; the first error is returned.
func (p *Provider) Load(ctx context.Context) error {
	start := time.Now()
	var group errgroup.Group
	for _, store := range p.refreshers() {
		store := store
		group.Go(func() error {
			return store.Refresh(ctx)
		})
	}
	err := group.Wait()

	p.Log.Info("stores.Provider.Load finished",
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)
	return err
}

// Summary computes the landing view metrics from the cached collections.
// Doctors only see their appointment count, admins do not see revenue.
func (p *Provider) Summary(now time.Time, loc *time.Location, role access.Role) responses.DashboardSummary {
	summary := responses.DashboardSummary{
		TodayAppointmentCount: len(p.Appointments.Today(now, loc)),
	}
	if lastErr := p.LastError(); lastErr != nil {
		summary.LastError = UserMessage(lastErr, lastErr.Error())
	}
	if role == access.RoleDoctor {
		return summary
	}

	summary.PatientCount = len(p.Patients.Collection())
	summary.PendingExpenseCount = len(p.Expenses.Pending.Collection())
	if role != access.RoleAdmin {
		summary.TotalRevenue = p.Bills.Revenue()
	}
	return summary
}
