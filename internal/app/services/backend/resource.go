package backend

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"fmt"
	"net/url"
)

// resourceClient implements contracts.ResourceClient for one REST collection.
type resourceClient[T any] struct {
	client   *Client
	resource string
}

func newResourceClient[T any](client *Client, resource string) resourceClient[T] {
	return resourceClient[T]{client: client, resource: resource}
}

func (r resourceClient[T]) collectionPath() string {
	return "/" + r.resource
}

func (r resourceClient[T]) itemPath(id int64) string {
	return fmt.Sprintf("/%s/%d", r.resource, id)
}

func (r resourceClient[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.client.do(ctx, "List."+r.resource, constvars.MethodGet, r.collectionPath(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (r resourceClient[T]) Get(ctx context.Context, id int64) (*T, error) {
	item := new(T)
	if err := r.client.do(ctx, "Get."+r.resource, constvars.MethodGet, r.itemPath(id), nil, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r resourceClient[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	item := new(T)
	if err := r.client.do(ctx, "Create."+r.resource, constvars.MethodPost, r.collectionPath(), body, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r resourceClient[T]) Update(ctx context.Context, id int64, body interface{}) (*T, error) {
	item := new(T)
	if err := r.client.do(ctx, "Update."+r.resource, constvars.MethodPut, r.itemPath(id), body, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r resourceClient[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, "Delete."+r.resource, constvars.MethodDelete, r.itemPath(id), nil, nil)
}

func (r resourceClient[T]) listAt(ctx context.Context, operation, path string) ([]T, error) {
	items := make([]T, 0)
	if err := r.client.do(ctx, operation, constvars.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

type PatientClient struct {
	resourceClient[models.Patient]
}

func NewPatientClient(client *Client) *PatientClient {
	return &PatientClient{newResourceClient[models.Patient](client, constvars.ResourcePatients)}
}

type AppointmentClient struct {
	resourceClient[models.Appointment]
}

func NewAppointmentClient(client *Client) *AppointmentClient {
	return &AppointmentClient{newResourceClient[models.Appointment](client, constvars.ResourceAppointments)}
}

type MedicationClient struct {
	resourceClient[models.Medication]
}

func NewMedicationClient(client *Client) *MedicationClient {
	return &MedicationClient{newResourceClient[models.Medication](client, constvars.ResourceMedications)}
}

type ExpenseClient struct {
	resourceClient[models.Expense]
}

func NewExpenseClient(client *Client) *ExpenseClient {
	return &ExpenseClient{newResourceClient[models.Expense](client, constvars.ResourceExpenses)}
}

func (c *ExpenseClient) ListPending(ctx context.Context) ([]models.Expense, error) {
	return c.listAt(ctx, "ListPending.expenses", c.collectionPath()+"/pending")
}

func (c *ExpenseClient) Approve(ctx context.Context, id int64) error {
	return c.client.do(ctx, "Approve.expenses", constvars.MethodPost, c.itemPath(id)+"/approve", nil, nil)
}

func (c *ExpenseClient) Reject(ctx context.Context, id int64) error {
	return c.client.do(ctx, "Reject.expenses", constvars.MethodPost, c.itemPath(id)+"/reject", nil, nil)
}

type UserClient struct {
	resourceClient[models.User]
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{newResourceClient[models.User](client, constvars.ResourceUsers)}
}

func (c *UserClient) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return c.listAt(ctx, "ListByRole.users", c.collectionPath()+"/role/"+url.PathEscape(role))
}

type BillClient struct {
	resourceClient[models.Bill]
}

func NewBillClient(client *Client) *BillClient {
	return &BillClient{newResourceClient[models.Bill](client, constvars.ResourceBilling)}
}

func (c *BillClient) ListByPatient(ctx context.Context, patientID int64) ([]models.Bill, error) {
	return c.listAt(ctx, "ListByPatient.billing", fmt.Sprintf("%s/patient/%d", c.collectionPath(), patientID))
}
