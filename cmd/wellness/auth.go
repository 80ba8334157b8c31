package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/letsdodifferent/HCLTech/internal/controller"
	"github.com/letsdodifferent/HCLTech/internal/guard"
	"github.com/letsdodifferent/HCLTech/internal/model"
)

func newRegisterCmd(a *app) *cobra.Command {
	ctrl := controller.NewRegister(a.sess, a.validate)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and open a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl.SubmitForm(cmd.Context())
			if msg := ctrl.Submit.Message(); msg != "" {
				return errors.New(msg)
			}
			color.Green("Registration successful! Welcome, %s.", ctrl.User.Name)
			switch ctrl.User.Role {
			case model.RolePatient:
				color.Cyan("Redirecting to %s", guard.RouteDashboard)
			case model.RoleProvider:
				color.Cyan("Redirecting to %s", guard.RouteProviderHome)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ctrl.Form.Name, "name", "", "full name")
	f.StringVar(&ctrl.Form.Age, "age", "", "age in years")
	f.StringVar(&ctrl.Form.Email, "email", "", "email address")
	f.StringVar(&ctrl.Form.Phone, "phone", "", "phone number")
	f.StringVar(&ctrl.Form.Address, "address", "", "postal address")
	f.StringVar(&ctrl.Form.AadharCard, "aadhar", "", "aadhar card number")
	f.StringVar(&ctrl.Form.Password, "password", "", "password (min 6 characters)")
	f.StringVar(&ctrl.Form.ConfirmPassword, "confirm-password", "", "repeat the password")
	f.StringVar(&ctrl.Form.Role, "role", model.RolePatient, "patient or provider")
	f.BoolVar(&ctrl.Form.Consent, "consent", false, "agree to the terms and conditions")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	ctrl := controller.NewLogin(a.sess)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl.SubmitForm(cmd.Context())
			if msg := ctrl.Submit.Message(); msg != "" {
				return errors.New(msg)
			}
			color.Green("Logged in as %s (%s).", ctrl.User.Name, ctrl.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&ctrl.Email, "email", "", "email address")
	cmd.Flags().StringVar(&ctrl.Password, "password", "", "password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sess.Logout(cmd.Context()); err != nil {
				return err
			}
			color.Cyan("Logged out. Redirecting to %s", guard.RouteLogin)
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user := a.sess.Restore(cmd.Context())
			if user == nil {
				return errors.New("not logged in")
			}
			color.New(color.Bold).Printf("%s\n", user.Name)
			cmd.Printf("email: %s\nrole:  %s\n", user.Email, user.Role)
			return nil
		},
	}
}
