package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/komplai/designsystem/internal/logger"
)

type rootFlags struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "komplai",
		Short:         "Komplai renders its design system in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: true,
				Writer:        cmd.ErrOrStderr(),
				RunID:         uuid.NewString(),
			})
			if err != nil {
				return err
			}
			flags.log = log.With("command", cmd.Name())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, render the built-in dashboard
			return runRender(cmd, flags, renderOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
