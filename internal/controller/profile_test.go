package controller

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/letsdodifferent/HCLTech/internal/portaltest"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

func newProfileCtrl(t *testing.T, srv *portaltest.Server) *Profile {
	return NewProfile(newTestAPI(t, srv, portaltest.Token), zaptest.NewLogger(t), validator.New(), time.Minute)
}

func TestProfileLoadSeedsForm(t *testing.T) {
	srv := portaltest.New(t)
	ctrl := newProfileCtrl(t, srv)

	ctrl.Load(context.Background())

	assert.Equal(t, view.Ready, ctrl.State.Phase())
	assert.Equal(t, srv.Profile.Name, ctrl.Form.Name)
	assert.Equal(t, "8000", ctrl.Form.StepsGoal)
	assert.Equal(t, "2.5", ctrl.Form.WaterGoal)
}

func TestProfileCancelRestoresFetchedValues(t *testing.T) {
	srv := portaltest.New(t)
	ctrl := newProfileCtrl(t, srv)
	ctrl.Load(context.Background())

	ctrl.Edit()
	ctrl.Form.Name = "Someone Else"
	ctrl.Form.Allergies = "Peanuts"
	ctrl.Form.StepsGoal = "99999"

	ctrl.Cancel()

	assert.False(t, ctrl.Editing)
	assert.Equal(t, srv.Profile.Name, ctrl.Form.Name)
	assert.Equal(t, srv.Profile.Allergies, ctrl.Form.Allergies)
	assert.Equal(t, "8000", ctrl.Form.StepsGoal)
}

func TestProfileSaveCommitsAndRefetches(t *testing.T) {
	srv := portaltest.New(t)
	ctrl := newProfileCtrl(t, srv)
	ctrl.Load(context.Background())

	ctrl.Edit()
	ctrl.Form.Name = "Asha R"
	ctrl.Form.Allergies = "Dust"
	ctrl.Form.StepsGoal = "10000"
	ctrl.Save(context.Background())

	assert.True(t, ctrl.Submit.Success())
	assert.False(t, ctrl.Editing)

	// Local copy is the re-fetched server record.
	assert.Equal(t, "Asha R", ctrl.State.Data().Name)
	assert.Equal(t, "Dust", ctrl.State.Data().Allergies)
	assert.Equal(t, 10000, ctrl.State.Data().StepsGoal)
	// Immutable fields survive untouched.
	assert.Equal(t, portaltest.Email, ctrl.State.Data().Email)
}

func TestProfileSaveFailureKeepsDraft(t *testing.T) {
	srv := portaltest.New(t)
	ctrl := newProfileCtrl(t, srv)
	ctrl.Load(context.Background())

	srv.Fail("/patient/profile", 500, "Failed to update profile")
	ctrl.Edit()
	ctrl.Form.Name = "Asha R"
	ctrl.Save(context.Background())

	assert.False(t, ctrl.Submit.Success())
	assert.Equal(t, "Failed to update profile", ctrl.Submit.Message())
	assert.True(t, ctrl.Editing, "the form stays up on failure")
	assert.Equal(t, "Asha R", ctrl.Form.Name, "entered values are kept")
}

func TestProfileSaveValidatesBeforeNetwork(t *testing.T) {
	srv := portaltest.New(t)
	ctrl := newProfileCtrl(t, srv)
	ctrl.Load(context.Background())

	before := srv.Profile
	ctrl.Edit()
	ctrl.Form.Name = ""
	ctrl.Save(context.Background())

	assert.Equal(t, "is required", ctrl.Submit.Message())
	assert.Equal(t, before, srv.Profile, "invalid drafts never reach the backend")
}
