package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// Provider is the provider's roster screen: the assigned-patient list plus
// the assign and compliance actions.
type Provider struct {
	api *api.Client
	log *zap.Logger

	Patients view.Resource[[]model.PatientSummary]
	Overview view.Resource[model.PatientOverview]
}

// NewProvider builds the provider controller.
func NewProvider(client *api.Client, log *zap.Logger) *Provider {
	return &Provider{api: client, log: log}
}

// Load fetches the assigned-patient list.
func (p *Provider) Load(ctx context.Context) {
	p.Patients.Begin()
	patients, err := p.api.Provider.GetPatients(ctx)
	if err != nil {
		p.log.Error("error fetching patients", zap.Error(err))
		p.Patients.Fail(apperror.UserMessage(err))
		return
	}
	p.Patients.Resolve(patients)
}

// LoadOverview fetches one patient's detail view.
func (p *Provider) LoadOverview(ctx context.Context, patientID string) {
	p.Overview.Begin()
	overview, err := p.api.Provider.GetPatientOverview(ctx, patientID)
	if err != nil {
		p.log.Error("error fetching patient overview", zap.Error(err))
		p.Overview.Fail(apperror.UserMessage(err))
		return
	}
	p.Overview.Resolve(*overview)
}

// Assign links a patient to this provider, then refreshes the list so the
// server's roster replaces the local one.
func (p *Provider) Assign(ctx context.Context, patientID string) error {
	if err := p.api.Provider.AssignPatient(ctx, patientID); err != nil {
		p.log.Error("error assigning patient", zap.Error(err))
		return err
	}
	p.Load(ctx)
	return nil
}

// SetCompliance updates a patient's compliance status, then refreshes.
func (p *Provider) SetCompliance(ctx context.Context, patientID, status string) error {
	if err := p.api.Provider.UpdateCompliance(ctx, patientID, status); err != nil {
		p.log.Error("error updating compliance", zap.Error(err))
		return err
	}
	p.Load(ctx)
	return nil
}
