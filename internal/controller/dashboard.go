// Package controller implements the screen controllers: each fetches its
// resources on display, renders through the view lifecycle, and refreshes
// from the server after every successful submit.
package controller

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// DashboardData is everything the dashboard renders in one ready state.
type DashboardData struct {
	Wellness  model.WellnessSnapshot
	Reminders []model.Reminder
	Tip       string
}

// Dashboard fetches wellness metrics, reminders and the daily tip together.
type Dashboard struct {
	api   *api.Client
	log   *zap.Logger
	State view.Resource[DashboardData]
}

// NewDashboard builds the dashboard controller.
func NewDashboard(client *api.Client, log *zap.Logger) *Dashboard {
	return &Dashboard{api: client, log: log}
}

// Load issues the three fetches concurrently. The batch is atomic: one
// failure fails the screen and no partial result is kept.
func (d *Dashboard) Load(ctx context.Context) {
	d.State.Begin()

	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := d.api.Patient.GetWellness(gctx)
		if err != nil {
			return err
		}
		data.Wellness = *w
		return nil
	})
	g.Go(func() error {
		r, err := d.api.Patient.GetReminders(gctx)
		if err != nil {
			return err
		}
		data.Reminders = r
		return nil
	})
	g.Go(func() error {
		t, err := d.api.Public.GetHealthTip(gctx)
		if err != nil {
			return err
		}
		data.Tip = t.Tip
		return nil
	})

	if err := g.Wait(); err != nil {
		d.log.Error("error loading dashboard", zap.Error(err))
		d.State.Fail(apperror.UserMessage(err))
		return
	}
	d.State.Resolve(data)
}

// Retry re-runs the same fetch lifecycle from loading.
func (d *Dashboard) Retry(ctx context.Context) {
	d.Load(ctx)
}
