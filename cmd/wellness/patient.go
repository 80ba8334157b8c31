package main

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/letsdodifferent/HCLTech/internal/controller"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show wellness metrics, reminders and the daily tip",
		RunE: a.guarded(model.RolePatient, func(cmd *cobra.Command, _ []string) error {
			ctrl := controller.NewDashboard(a.api, a.log)
			ctrl.Load(cmd.Context())
			if ctrl.State.Phase() == view.Errored {
				return errors.New(ctrl.State.Message())
			}
			renderDashboard(cmd, ctrl.State.Data())
			return nil
		}),
	}
}

func newTrackerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Daily goal tracker",
	}
	cmd.AddCommand(newTrackerHistoryCmd(a), newTrackerLogCmd(a))
	return cmd
}

func newTrackerHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent daily logs",
		RunE: a.guarded(model.RolePatient, func(cmd *cobra.Command, _ []string) error {
			ctrl := controller.NewTracker(a.api, a.log, a.cfg.BannerDuration)
			ctrl.Load(cmd.Context())
			if ctrl.Logs.Phase() == view.Errored {
				return errors.New(ctrl.Logs.Message())
			}
			renderLogs(cmd, ctrl.Logs.Data())
			return nil
		}),
	}
}

func newTrackerLogCmd(a *app) *cobra.Command {
	ctrl := controller.NewTracker(a.api, a.log, a.cfg.BannerDuration)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Save today's goals",
		RunE: a.guarded(model.RolePatient, func(cmd *cobra.Command, _ []string) error {
			ctrl.SubmitForm(cmd.Context())
			if msg := ctrl.Submit.Message(); msg != "" {
				return errors.New(msg)
			}
			color.Green("Daily log saved.")
			if ctrl.Logs.Phase() == view.Ready {
				renderLogs(cmd, ctrl.Logs.Data())
			}
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVar(&ctrl.Form.Date, "date", ctrl.Form.Date, "log date (YYYY-MM-DD)")
	f.StringVar(&ctrl.Form.Steps, "steps", "", "steps walked")
	f.StringVar(&ctrl.Form.WaterLitres, "water", "", "water intake in litres")
	f.StringVar(&ctrl.Form.SleepHours, "sleep", "", "sleep in hours")
	f.StringVar(&ctrl.Form.ActiveMinutes, "active", "", "active minutes")
	f.BoolVar(&ctrl.Form.GoalsMet, "goals-met", false, "all goals met today")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileEditCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: a.guarded(model.RolePatient, func(cmd *cobra.Command, _ []string) error {
			ctrl := controller.NewProfile(a.api, a.log, a.validate, a.cfg.BannerDuration)
			ctrl.Load(cmd.Context())
			if ctrl.State.Phase() == view.Errored {
				return errors.New(ctrl.State.Message())
			}
			renderProfile(cmd, ctrl.State.Data())
			return nil
		}),
	}
}

func newProfileEditCmd(a *app) *cobra.Command {
	ctrl := controller.NewProfile(a.api, a.log, a.validate, a.cfg.BannerDuration)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update profile fields and wellness goals",
		RunE: a.guarded(model.RolePatient, func(cmd *cobra.Command, _ []string) error {
			// Fetch first so unset flags keep their current values.
			ctrl.Load(cmd.Context())
			if ctrl.State.Phase() == view.Errored {
				return errors.New(ctrl.State.Message())
			}
			ctrl.Edit()
			applyFlag(cmd, "name", &ctrl.Form.Name)
			applyFlag(cmd, "age", &ctrl.Form.Age)
			applyFlag(cmd, "phone", &ctrl.Form.Phone)
			applyFlag(cmd, "address", &ctrl.Form.Address)
			applyFlag(cmd, "allergies", &ctrl.Form.Allergies)
			applyFlag(cmd, "medications", &ctrl.Form.CurrentMedications)
			applyFlag(cmd, "steps-goal", &ctrl.Form.StepsGoal)
			applyFlag(cmd, "active-goal", &ctrl.Form.ActiveTimeGoal)
			applyFlag(cmd, "sleep-goal", &ctrl.Form.SleepGoal)
			applyFlag(cmd, "water-goal", &ctrl.Form.WaterGoal)

			ctrl.Save(cmd.Context())
			if msg := ctrl.Submit.Message(); msg != "" {
				return errors.New(msg)
			}
			color.Green("Profile updated successfully!")
			renderProfile(cmd, ctrl.State.Data())
			return nil
		}),
	}

	f := cmd.Flags()
	f.String("name", "", "full name")
	f.String("age", "", "age in years")
	f.String("phone", "", "phone number")
	f.String("address", "", "postal address")
	f.String("allergies", "", "known allergies")
	f.String("medications", "", "current medications")
	f.String("steps-goal", "", "daily steps goal")
	f.String("active-goal", "", "active time goal in minutes")
	f.String("sleep-goal", "", "sleep goal in hours")
	f.String("water-goal", "", "water intake goal in litres")
	return cmd
}

func applyFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func renderDashboard(cmd *cobra.Command, data controller.DashboardData) {
	color.New(color.FgCyan, color.Bold).Println("Patient Dashboard")
	cmd.Println("Track your wellness, reminders and daily health tips.")
	cmd.Println()

	w := data.Wellness
	renderMetric(cmd, "Steps", w.StepsToday, w.StepsGoal, "")
	renderMetric(cmd, "Sleep", w.SleepHours, w.SleepGoal, "h")
	renderMetric(cmd, "Active Time", w.ActiveMinutes, w.ActiveGoal, " min")
	renderMetric(cmd, "Water Intake", w.WaterIntake, w.WaterGoal, " L")

	cmd.Println()
	color.New(color.Bold).Println("Preventive Care Reminders")
	if len(data.Reminders) == 0 {
		cmd.Println("No upcoming reminders.")
	}
	for _, r := range data.Reminders {
		marker := " "
		if !r.Completed {
			marker = "•"
		}
		cmd.Printf("%s %s (due %s)\n", marker, r.Title, r.DueDate)
	}

	cmd.Println()
	color.New(color.Bold).Println("Health Tip of the Day")
	cmd.Println(data.Tip)
}

func renderMetric(cmd *cobra.Command, label string, value, goal float64, unit string) {
	percent := view.Percent(value, goal)
	filled := percent / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	cmd.Printf("%-14s %s %3d%%  (%g%s / %g%s)\n", label, bar, percent, value, unit, goal, unit)
}

func renderLogs(cmd *cobra.Command, logs []model.DailyLog) {
	color.New(color.Bold).Println("Recent Logs")
	if len(logs) == 0 {
		cmd.Println("No logs yet. Start by adding today's goals.")
		return
	}
	cmd.Printf("%-12s %8s %10s %9s %12s %10s\n", "Date", "Steps", "Water (L)", "Sleep (h)", "Active (min)", "Goals Met")
	for _, l := range logs {
		met := "Not fully"
		if l.GoalsMet {
			met = "Yes"
		}
		cmd.Printf("%-12s %8d %10.1f %9.1f %12d %10s\n", l.Date, l.Steps, l.WaterLitres, l.SleepHours, l.ActiveMinutes, met)
	}
}

func renderProfile(cmd *cobra.Command, p model.Profile) {
	color.New(color.FgCyan, color.Bold).Println("My Profile")
	cmd.Printf("Name:        %s\n", p.Name)
	cmd.Printf("Age:         %d\n", p.Age)
	cmd.Printf("Email:       %s (cannot be changed)\n", p.Email)
	cmd.Printf("Phone:       %s\n", p.Phone)
	cmd.Printf("Address:     %s\n", p.Address)
	cmd.Printf("Aadhar Card: %s (cannot be changed)\n", p.AadharCard)
	cmd.Printf("Allergies:   %s\n", p.Allergies)
	cmd.Printf("Medications: %s\n", p.CurrentMedications)
	cmd.Println()
	color.New(color.Bold).Println("Wellness Goals")
	cmd.Printf("Steps: %d   Active: %d min   Sleep: %gh   Water: %g L\n",
		p.StepsGoal, p.ActiveTimeGoal, p.SleepGoal, p.WaterGoal)
}
