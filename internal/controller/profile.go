package controller

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// ProfileForm stages edits to the profile. Changes live here until Save
// commits them; Cancel throws the draft away.
type ProfileForm struct {
	Name               string
	Age                string
	Phone              string
	Address            string
	Allergies          string
	CurrentMedications string
	StepsGoal          string
	ActiveTimeGoal     string
	SleepGoal          string
	WaterGoal          string
}

// Profile is the profile editor screen.
type Profile struct {
	api      *api.Client
	log      *zap.Logger
	validate *validator.Validate
	banner   time.Duration

	State   view.Resource[model.Profile]
	Form    ProfileForm
	Editing bool
	Submit  view.Submission
}

// NewProfile builds the profile controller.
func NewProfile(client *api.Client, log *zap.Logger, validate *validator.Validate, banner time.Duration) *Profile {
	return &Profile{api: client, log: log, validate: validate, banner: banner}
}

// Load fetches the profile and seeds the form from it.
func (p *Profile) Load(ctx context.Context) {
	p.State.Begin()
	prof, err := p.api.Patient.GetProfile(ctx)
	if err != nil {
		p.log.Error("error fetching profile", zap.Error(err))
		p.State.Fail(apperror.UserMessage(err))
		return
	}
	p.State.Resolve(*prof)
	p.Form = formFromProfile(*prof)
}

// Retry re-runs the fetch from loading.
func (p *Profile) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Edit switches the screen into editing mode; the form already holds the
// last fetched values.
func (p *Profile) Edit() {
	p.Editing = true
}

// Cancel discards the draft and restores every field to the last
// successfully fetched profile.
func (p *Profile) Cancel() {
	p.Editing = false
	if p.State.Phase() == view.Ready {
		p.Form = formFromProfile(p.State.Data())
	}
}

// Save validates and coerces the draft, commits it, then re-fetches the
// record so the server's copy replaces the local one.
func (p *Profile) Save(ctx context.Context) {
	update := model.ProfileUpdate{
		Name:               p.Form.Name,
		Age:                coerceInt(p.Form.Age),
		Phone:              p.Form.Phone,
		Address:            p.Form.Address,
		Allergies:          p.Form.Allergies,
		CurrentMedications: p.Form.CurrentMedications,
		StepsGoal:          coerceInt(p.Form.StepsGoal),
		ActiveTimeGoal:     coerceInt(p.Form.ActiveTimeGoal),
		SleepGoal:          coerceFloat(p.Form.SleepGoal),
		WaterGoal:          coerceFloat(p.Form.WaterGoal),
	}

	if err := p.validate.Struct(update); err != nil {
		p.Submit.Fail(apperror.FirstMessage(err))
		return
	}

	p.Submit.Begin()
	if _, err := p.api.Patient.UpdateProfile(ctx, update); err != nil {
		p.log.Error("error updating profile", zap.Error(err))
		p.Submit.Fail(apperror.UserMessage(err))
		return
	}

	prof, err := p.api.Patient.GetProfile(ctx)
	if err != nil {
		p.log.Error("error refreshing profile after save", zap.Error(err))
		p.State.Fail(apperror.UserMessage(err))
	} else {
		p.State.Resolve(*prof)
		p.Form = formFromProfile(*prof)
	}

	p.Editing = false
	p.Submit.Succeed(p.banner)
}

func formFromProfile(prof model.Profile) ProfileForm {
	return ProfileForm{
		Name:               prof.Name,
		Age:                strconv.Itoa(prof.Age),
		Phone:              prof.Phone,
		Address:            prof.Address,
		Allergies:          prof.Allergies,
		CurrentMedications: prof.CurrentMedications,
		StepsGoal:          strconv.Itoa(prof.StepsGoal),
		ActiveTimeGoal:     strconv.Itoa(prof.ActiveTimeGoal),
		SleepGoal:          strconv.FormatFloat(prof.SleepGoal, 'f', -1, 64),
		WaterGoal:          strconv.FormatFloat(prof.WaterGoal, 'f', -1, 64),
	}
}
