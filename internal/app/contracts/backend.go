package contracts

import (
	"context"
	"dentclinic-service/internal/app/models"
)

// ResourceClient is the REST surface shared by every backend collection.
type ResourceClient[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, body interface{}) (*T, error)
	Update(ctx context.Context, id int64, body interface{}) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type PatientClient interface {
	ResourceClient[models.Patient]
}

type AppointmentClient interface {
	ResourceClient[models.Appointment]
}

type ExpenseClient interface {
	ResourceClient[models.Expense]
	ListPending(ctx context.Context) ([]models.Expense, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
}

type UserClient interface {
	ResourceClient[models.User]
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

type BillClient interface {
	ResourceClient[models.Bill]
	ListByPatient(ctx context.Context, patientID int64) ([]models.Bill, error)
}

type MedicationClient interface {
	ResourceClient[models.Medication]
}

type ClinicalClient interface {
	PrescriptionsByPatient(ctx context.Context, patientID int64) ([]models.Prescription, error)
	MedicalNotesByPatient(ctx context.Context, patientID int64) ([]models.MedicalNote, error)
	GetSettings(ctx context.Context) (*models.ClinicSettings, error)
	UpdateSettings(ctx context.Context, body interface{}) (*models.ClinicSettings, error)
}

type AuthClient interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, body interface{}) (*models.User, error)
}
