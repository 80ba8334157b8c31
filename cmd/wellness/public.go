package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/letsdodifferent/HCLTech/internal/controller"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

func newHealthInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health-info",
		Short: "Browse public health information topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := controller.NewHealthInfo(a.api, a.log)
			ctrl.Load(cmd.Context())
			if ctrl.Topics.Phase() == view.Errored {
				return errors.New(ctrl.Topics.Message())
			}

			color.New(color.FgCyan, color.Bold).Println("Health Information Center")
			for _, topic := range ctrl.Topics.Data() {
				cmd.Println()
				color.New(color.Bold).Printf("%s %s [%s]\n", topic.Icon, topic.Title, topic.Category)
				cmd.Println(topic.Description)
				for _, tip := range topic.Tips {
					cmd.Printf("  - %s\n", tip)
				}
			}
			cmd.Println()
			cmd.Println("This information is educational and does not replace professional medical advice.")
			return nil
		},
	}
}
