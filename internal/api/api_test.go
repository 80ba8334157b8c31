package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/httpclient"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/portaltest"
)

func newTestClient(t *testing.T, srv *portaltest.Server, token string) *Client {
	hc := httpclient.New(srv.URL, 5*time.Second, zaptest.NewLogger(t),
		httpclient.WithTokenFunc(func() string { return token }))
	return New(hc)
}

func TestAuthLoginAndMe(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, "")

	sess, err := client.Auth.Login(context.Background(), model.Credentials{
		Email:    portaltest.Email,
		Password: portaltest.Password,
	})
	assert.NoError(t, err)
	assert.Equal(t, portaltest.Token, sess.Token)
	assert.Equal(t, model.RolePatient, sess.User.Role)

	authed := newTestClient(t, srv, sess.Token)
	me, err := authed.Auth.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, sess.User.Email, me.Email)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, "")

	_, err := client.Auth.Login(context.Background(), model.Credentials{
		Email:    portaltest.Email,
		Password: "wrong",
	})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.Equal(t, "Invalid email or password", apperror.UserMessage(err))
}

func TestPatientLogsRoundTrip(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, portaltest.Token)

	created, err := client.Patient.CreateLog(context.Background(), model.DailyLog{
		Date: "2026-08-29", Steps: 7500, WaterLitres: 2.5, SleepHours: 7, ActiveMinutes: 35, GoalsMet: true,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	logs, err := client.Patient.GetLogs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)
	assert.Equal(t, 7500, logs[0].Steps)
}

func TestPatientCreateReminder(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, portaltest.Token)

	created, err := client.Patient.CreateReminder(context.Background(), model.Reminder{
		Title: "Dental checkup", DueDate: "2026-11-15",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	reminders, err := client.Patient.GetReminders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reminders, 2)
}

func TestPatientEndpointsRequireCredential(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, "")

	_, err := client.Patient.GetWellness(context.Background())
	assert.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestProviderGroupPaths(t *testing.T) {
	srv := portaltest.New(t)
	srv.Patients = []model.PatientSummary{
		{ID: "p1", Name: "Asha Rao", Email: portaltest.Email, ComplianceStatus: "good"},
	}
	client := newTestClient(t, srv, portaltest.Token)

	assert.NoError(t, client.Provider.AssignPatient(context.Background(), "p1"))

	patients, err := client.Provider.GetPatients(context.Background())
	assert.NoError(t, err)
	assert.Len(t, patients, 1)

	overview, err := client.Provider.GetPatientOverview(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", overview.Patient.Name)

	assert.NoError(t, client.Provider.UpdateCompliance(context.Background(), "p1", "excellent"))

	_, err = client.Provider.GetPatientOverview(context.Background(), "missing")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestPublicGroupNeedsNoCredential(t *testing.T) {
	srv := portaltest.New(t)
	client := newTestClient(t, srv, "")

	topics, err := client.Public.GetHealthInfo(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, topics)

	tip, err := client.Public.GetHealthTip(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, tip.Tip)
}
