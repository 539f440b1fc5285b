package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/komplai/designsystem/internal/dashboard"
	"github.com/komplai/designsystem/internal/ui/components"
)

type renderOptions struct {
	ConfigPath string
	Width      int
	NoColor    bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dashboard once to stdout",
		Long: "Render a dashboard document once. Without --config the built-in " +
			"example dashboard is shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a dashboard document")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Page width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colour output")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return err
	}
	if err := validateWidth(opts.Width); err != nil {
		return err
	}

	doc, err := dashboard.Load(opts.ConfigPath, root.log)
	if err != nil {
		return err
	}
	content := dashboard.Build(doc, root.log)

	ctx := renderContext(cmd, opts.Width, opts.NoColor)
	root.log.WithFields(map[string]any{
		"width": ctx.Constraints.Width(),
		"color": ctx.Profile != termenv.Ascii,
	}).Debug("rendering dashboard")

	view := withProfile(ctx.Profile, func() string {
		return components.NewDashboard(content).ViewWithContext(ctx)
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
	return err
}

// renderContext builds the context for one-shot output to the command's writer.
func renderContext(cmd *cobra.Command, width int, noColor bool) components.RenderContext {
	theme := components.DefaultTheme()
	out := cmd.OutOrStdout()

	ctx := components.DefaultContext().
		WithTheme(theme).
		WithConstraints(components.WithWidth(resolveWidth(width, out, theme.Layout.DefaultWidth)))

	if noColor || !isTerminal(out) {
		ctx = ctx.WithProfile(termenv.Ascii)
	}
	return ctx
}

// withProfile runs view with lipgloss's default renderer set to profile
// and restores the previous profile afterwards.
func withProfile(profile termenv.Profile, view func() string) string {
	previous := lipgloss.ColorProfile()
	if previous == profile {
		return view()
	}
	lipgloss.SetColorProfile(profile)
	defer lipgloss.SetColorProfile(previous)
	return view()
}
