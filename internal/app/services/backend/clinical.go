package backend

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"fmt"
)

// ClinicalClient covers the per-patient lookups and clinic settings, which
// have no collection store of their own.
type ClinicalClient struct {
	client *Client
}

func NewClinicalClient(client *Client) *ClinicalClient {
	return &ClinicalClient{client: client}
}

func (c *ClinicalClient) PrescriptionsByPatient(ctx context.Context, patientID int64) ([]models.Prescription, error) {
	prescriptions := make([]models.Prescription, 0)
	path := fmt.Sprintf("/%s/patient/%d", constvars.ResourcePrescriptions, patientID)
	if err := c.client.do(ctx, "PrescriptionsByPatient", constvars.MethodGet, path, nil, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *ClinicalClient) MedicalNotesByPatient(ctx context.Context, patientID int64) ([]models.MedicalNote, error) {
	notes := make([]models.MedicalNote, 0)
	path := fmt.Sprintf("/%s/patient/%d", constvars.ResourceMedicalNotes, patientID)
	if err := c.client.do(ctx, "MedicalNotesByPatient", constvars.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *ClinicalClient) GetSettings(ctx context.Context) (*models.ClinicSettings, error) {
	settings := new(models.ClinicSettings)
	if err := c.client.do(ctx, "GetSettings", constvars.MethodGet, "/"+constvars.ResourceSettings, nil, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *ClinicalClient) UpdateSettings(ctx context.Context, body interface{}) (*models.ClinicSettings, error) {
	settings := new(models.ClinicSettings)
	if err := c.client.do(ctx, "UpdateSettings", constvars.MethodPut, "/"+constvars.ResourceSettings, body, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
