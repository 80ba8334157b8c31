package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/letsdodifferent/HCLTech/internal/controller"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

func newProviderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Provider roster screens",
	}
	cmd.AddCommand(newProviderPatientsCmd(a), newProviderAssignCmd(a), newProviderComplianceCmd(a))
	return cmd
}

func newProviderPatientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patients [id]",
		Short: "List assigned patients, or show one patient's overview",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.guarded(model.RoleProvider, func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewProvider(a.api, a.log)

			if len(args) == 1 {
				ctrl.LoadOverview(cmd.Context(), args[0])
				if ctrl.Overview.Phase() == view.Errored {
					return errors.New(ctrl.Overview.Message())
				}
				overview := ctrl.Overview.Data()
				color.New(color.FgCyan, color.Bold).Printf("Patient: %s\n", overview.Patient.Name)
				cmd.Printf("Compliance: %s\n", overview.Patient.ComplianceStatus)
				renderLogs(cmd, overview.Logs)
				return nil
			}

			ctrl.Load(cmd.Context())
			if ctrl.Patients.Phase() == view.Errored {
				return errors.New(ctrl.Patients.Message())
			}
			color.New(color.FgCyan, color.Bold).Println("Assigned Patients")
			for _, p := range ctrl.Patients.Data() {
				cmd.Printf("%-10s %-24s %-28s %s\n", p.ID, p.Name, p.Email, p.ComplianceStatus)
			}
			return nil
		}),
	}
}

func newProviderAssignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <patient-id>",
		Short: "Assign a patient to yourself",
		Args:  cobra.ExactArgs(1),
		RunE: a.guarded(model.RoleProvider, func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewProvider(a.api, a.log)
			if err := ctrl.Assign(cmd.Context(), args[0]); err != nil {
				return err
			}
			color.Green("Patient assigned.")
			return nil
		}),
	}
}

func newProviderComplianceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compliance <patient-id> <status>",
		Short: "Update a patient's compliance status",
		Args:  cobra.ExactArgs(2),
		RunE: a.guarded(model.RoleProvider, func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewProvider(a.api, a.log)
			if err := ctrl.SetCompliance(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			color.Green("Compliance updated.")
			return nil
		}),
	}
}
