package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/komplai/designsystem/internal/dashboard"
	"github.com/komplai/designsystem/internal/ui"
	"github.com/komplai/designsystem/internal/ui/components"
)

type showcaseOptions struct {
	Width   int
	NoColor bool
}

func newShowcaseCmd(root *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render every component in every variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateWidth(opts.Width); err != nil {
				return err
			}

			doc, err := dashboard.DefaultDocument()
			if err != nil {
				return err
			}
			content := dashboard.Build(doc, root.log)

			ctx := renderContext(cmd, opts.Width, opts.NoColor)
			page := components.NewContainer(showcaseSections(ctx.Theme, content)...).
				WithFill(ctx.Theme.Palette.Canvas).
				WithAppliers(components.PaddingXY(components.SpacingSizeMedium, components.SpacingSizeLarge))

			root.log.Debug("rendering showcase")
			view := withProfile(ctx.Profile, func() string { return page.ViewWithContext(ctx) })
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Page width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colour output")

	return cmd
}

func showcaseSections(theme components.Theme, content components.DashboardContent) []ui.Renderable {
	palette := theme.Palette
	heading := func(title string) ui.Renderable {
		return components.VStack(
			components.BlockSpacer(theme, components.SpacingSizeExtraLarge),
			components.LabelText(title).WithColor(palette.Accent),
			components.NewDivider().WithColor(palette.Moss),
		)
	}

	tasks := []components.Task{
		{Title: "Completed task", Status: components.TaskStatusCompleted, Progress: "4/4 Done", Assignee: "RA"},
		{Title: "Pending task", Status: components.TaskStatusPending, Progress: "1/4 Tasks", Assignee: "AV"},
		{Title: "Task with an unknown status", Status: components.ParseTaskStatus("archived"), Progress: "-", Assignee: "KM"},
	}

	alerts := components.NewGrid()
	for _, kind := range []string{"risk", "growth", "observation", "unknown"} {
		alerts.Add(components.NewAlertCard(components.Alert{
			Type:    components.ParseAlertType(kind),
			Title:   kind,
			Message: fmt.Sprintf("Alert card resolved from type %q.", kind),
		}))
	}

	bars := components.VStack().WithGap(components.BlockValue(theme, components.SpacingSizeSmall))
	for _, sample := range []struct {
		variant      string
		value, total float64
	}{
		{"complete", 25, 25},
		{"partial", 35, 50},
		{"inactive", 10, 20},
		{"", 3, 0},
	} {
		variant := components.ParseProgressVariant(sample.variant)
		label := fmt.Sprintf("%s %g/%g", variant, sample.value, sample.total)
		bars.Add(components.NewProgressBar(components.Progress{
			Label:   label,
			Value:   sample.value,
			Total:   sample.total,
			Variant: variant,
		}))
	}

	features := components.NewGrid(
		components.NewFeatureCard(components.Feature{Title: "Finance agent", Description: "Larry handles bookkeeping, reconciliation and reporting.", Icon: "◆"}),
		components.NewFeatureCard(components.Feature{Title: "Faster close", Description: "Close your books 65% faster.", Icon: "▲"}).WithHighlight(true),
	)

	buttons := components.HStack(
		components.PrimaryButton(components.DefaultCTA),
		components.AccentButton("Accent"),
		components.GhostButton("Ghost"),
	).WithGap(components.InlineValue(theme, components.SpacingSizeMedium)).
		WithCrossAlign(components.CrossCenter)

	return []ui.Renderable{
		heading("Hero"),
		components.NewHero(content.Hero),
		heading("Status card"),
		components.NewStatusCard("Every status", tasks).WithHighlight(1),
		heading("Alert cards"),
		alerts,
		heading("Progress bars"),
		components.NewCard(palette.Moss, bars).
			WithTitle("Close progress", palette.White).
			WithFooter(components.NewText("An empty variant resolves to complete.").WithColor(palette.Lede)),
		heading("Feature cards"),
		features,
		heading("Buttons"),
		buttons,
	}
}
