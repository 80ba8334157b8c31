// Package main provides the wellness portal command line client.
package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/config"
	"github.com/letsdodifferent/HCLTech/internal/guard"
	"github.com/letsdodifferent/HCLTech/internal/httpclient"
	"github.com/letsdodifferent/HCLTech/internal/logger"
	"github.com/letsdodifferent/HCLTech/internal/session"
)

// app wires the client stack once per invocation: config, logger, HTTP
// client with interceptors, API facade and session manager.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	api      *api.Client
	sess     *session.Manager
	validate *validator.Validate
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Env)

	store := session.NewFileStore(cfg.StateDir)
	hc := httpclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, log,
		httpclient.WithTokenFunc(func() string {
			sess, err := store.Load()
			if err != nil || sess == nil {
				return ""
			}
			return sess.Token
		}),
		httpclient.WithUnauthorized(func() {
			_ = store.Clear()
			fmt.Fprintf(os.Stderr, "Session expired. Redirecting to %s — please log in again.\n", guard.RouteLogin)
		}),
	)

	client := api.New(hc)
	return &app{
		cfg:      cfg,
		log:      log,
		api:      client,
		sess:     session.NewManager(store, client.Auth, log),
		validate: validator.New(),
	}, nil
}

// guarded re-evaluates the route guard before every protected command.
func (a *app) guarded(requiredRole string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		decision := guard.Check(a.sess, requiredRole)
		if !decision.Allowed {
			if decision.Redirect == guard.RouteLogin {
				return fmt.Errorf("you are not logged in; run `wellness login` first")
			}
			return fmt.Errorf("this screen is not available for your role")
		}
		return run(cmd, args)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wellness",
		Short:         "Patient wellness portal client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newTrackerCmd(a),
		newProfileCmd(a),
		newHealthInfoCmd(a),
		newProviderCmd(a),
	)
	return root
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start:", err)
		os.Exit(1)
	}
	defer func() { _ = a.log.Sync() }()

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
