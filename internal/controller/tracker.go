package controller

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// TrackerForm mirrors the goal form: numeric fields stay textual until
// submit so a blank entry coerces to zero instead of erroring.
type TrackerForm struct {
	Date          string
	Steps         string
	WaterLitres   string
	SleepHours    string
	ActiveMinutes string
	GoalsMet      bool
}

// Tracker is the goal-logging screen: a creation form over the full log
// history.
type Tracker struct {
	api    *api.Client
	log    *zap.Logger
	banner time.Duration

	Logs   view.Resource[[]model.DailyLog]
	Form   TrackerForm
	Submit view.Submission
}

// NewTracker builds the tracker with the form dated today.
func NewTracker(client *api.Client, log *zap.Logger, banner time.Duration) *Tracker {
	return &Tracker{
		api:    client,
		log:    log,
		banner: banner,
		Form:   TrackerForm{Date: time.Now().Format("2006-01-02")},
	}
}

// Load fetches the authoritative log list.
func (t *Tracker) Load(ctx context.Context) {
	t.Logs.Begin()
	logs, err := t.api.Patient.GetLogs(ctx)
	if err != nil {
		t.log.Error("error loading logs", zap.Error(err))
		t.Logs.Fail(apperror.UserMessage(err))
		return
	}
	t.Logs.Resolve(logs)
}

// Retry re-runs the fetch from loading.
func (t *Tracker) Retry(ctx context.Context) {
	t.Load(ctx)
}

// SubmitForm creates the log, then re-fetches the full list so the server's
// copy always wins over any local merge. On success the numeric fields and
// the checkbox reset while the date is preserved; on failure every entered
// value stays.
func (t *Tracker) SubmitForm(ctx context.Context) {
	if t.Form.Date == "" {
		t.Submit.Fail("Date is required")
		return
	}
	if _, err := time.Parse("2006-01-02", t.Form.Date); err != nil {
		t.Submit.Fail("Date must be in YYYY-MM-DD format")
		return
	}

	entry := model.DailyLog{
		Date:          t.Form.Date,
		Steps:         coerceInt(t.Form.Steps),
		WaterLitres:   coerceFloat(t.Form.WaterLitres),
		SleepHours:    coerceFloat(t.Form.SleepHours),
		ActiveMinutes: coerceInt(t.Form.ActiveMinutes),
		GoalsMet:      t.Form.GoalsMet,
	}

	t.Submit.Begin()
	if _, err := t.api.Patient.CreateLog(ctx, entry); err != nil {
		t.log.Error("error saving daily log", zap.Error(err))
		t.Submit.Fail(apperror.UserMessage(err))
		return
	}

	logs, err := t.api.Patient.GetLogs(ctx)
	if err != nil {
		t.log.Error("error refreshing logs after save", zap.Error(err))
		t.Logs.Fail(apperror.UserMessage(err))
	} else {
		t.Logs.Resolve(logs)
	}

	t.Form = TrackerForm{Date: t.Form.Date}
	t.Submit.Succeed(t.banner)
}

func coerceInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
