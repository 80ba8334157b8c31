// Package api is a typed shorthand over the HTTP client: each capability
// group maps operation names to fixed methods and paths, nothing more. No
// retries, no validation.
package api

import (
	"context"

	"github.com/letsdodifferent/HCLTech/internal/httpclient"
	"github.com/letsdodifferent/HCLTech/internal/model"
)

// Client bundles the four capability groups of the portal API.
type Client struct {
	Auth     AuthGroup
	Patient  PatientGroup
	Provider ProviderGroup
	Public   PublicGroup
}

// New builds the facade over an already configured HTTP client.
func New(hc *httpclient.Client) *Client {
	return &Client{
		Auth:     AuthGroup{hc: hc},
		Patient:  PatientGroup{hc: hc},
		Provider: ProviderGroup{hc: hc},
		Public:   PublicGroup{hc: hc},
	}
}

// AuthGroup covers registration and session endpoints.
type AuthGroup struct {
	hc *httpclient.Client
}

func (g AuthGroup) Register(ctx context.Context, data model.Registration) (*model.Session, error) {
	var s model.Session
	if err := g.hc.Post(ctx, "/auth/register", data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g AuthGroup) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	var s model.Session
	if err := g.hc.Post(ctx, "/auth/login", creds, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g AuthGroup) Logout(ctx context.Context) error {
	return g.hc.Post(ctx, "/auth/logout", nil, nil)
}

func (g AuthGroup) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := g.hc.Get(ctx, "/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// PatientGroup covers the patient record, wellness metrics, daily logs and
// reminders.
type PatientGroup struct {
	hc *httpclient.Client
}

func (g PatientGroup) GetProfile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	if err := g.hc.Get(ctx, "/patient/profile", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g PatientGroup) UpdateProfile(ctx context.Context, data model.ProfileUpdate) (*model.Profile, error) {
	var p model.Profile
	if err := g.hc.Put(ctx, "/patient/profile", data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g PatientGroup) GetWellness(ctx context.Context) (*model.WellnessSnapshot, error) {
	var w model.WellnessSnapshot
	if err := g.hc.Get(ctx, "/patient/wellness", &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (g PatientGroup) CreateLog(ctx context.Context, log model.DailyLog) (*model.DailyLog, error) {
	var created model.DailyLog
	if err := g.hc.Post(ctx, "/patient/logs", log, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g PatientGroup) GetLogs(ctx context.Context) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := g.hc.Get(ctx, "/patient/logs", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (g PatientGroup) GetReminders(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := g.hc.Get(ctx, "/patient/reminders", &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (g PatientGroup) CreateReminder(ctx context.Context, reminder model.Reminder) (*model.Reminder, error) {
	var created model.Reminder
	if err := g.hc.Post(ctx, "/patient/reminders", reminder, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ProviderGroup covers the provider's patient roster.
type ProviderGroup struct {
	hc *httpclient.Client
}

func (g ProviderGroup) AssignPatient(ctx context.Context, patientID string) error {
	body := map[string]string{"patientId": patientID}
	return g.hc.Post(ctx, "/provider/assign", body, nil)
}

func (g ProviderGroup) GetPatients(ctx context.Context) ([]model.PatientSummary, error) {
	var patients []model.PatientSummary
	if err := g.hc.Get(ctx, "/provider/patients", &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (g ProviderGroup) GetPatientOverview(ctx context.Context, patientID string) (*model.PatientOverview, error) {
	var overview model.PatientOverview
	if err := g.hc.Get(ctx, "/provider/patients/"+patientID, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (g ProviderGroup) UpdateCompliance(ctx context.Context, patientID, status string) error {
	body := map[string]string{"complianceStatus": status}
	return g.hc.Put(ctx, "/provider/patients/"+patientID+"/compliance", body, nil)
}

// PublicGroup covers content available without a session.
type PublicGroup struct {
	hc *httpclient.Client
}

func (g PublicGroup) GetHealthInfo(ctx context.Context) ([]model.HealthTopic, error) {
	var topics []model.HealthTopic
	if err := g.hc.Get(ctx, "/public/health-info", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (g PublicGroup) GetHealthTip(ctx context.Context) (*model.HealthTip, error) {
	var tip model.HealthTip
	if err := g.hc.Get(ctx, "/public/tip", &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}
