package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/komplai/designsystem/internal/dashboard"
	"github.com/komplai/designsystem/internal/tui/preview"
	"github.com/komplai/designsystem/internal/ui/components"
)

type previewOptions struct {
	ConfigPath string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open an interactive preview of a dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("preview needs an interactive terminal; use render instead")
			}

			doc, err := dashboard.Load(opts.ConfigPath, root.log)
			if err != nil {
				return err
			}

			root.log.Debug("starting preview")
			return preview.Run(cmd.Context(), dashboard.Build(doc, root.log), components.DefaultTheme())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a dashboard document")

	return cmd
}
