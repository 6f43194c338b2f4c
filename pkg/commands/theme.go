package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or set the display theme.",
		Long: `Show or set the display theme.

Without a stored choice the theme follows the terminal background.`,
		Example: `
ledger theme
ledger theme toggle
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light), string(theme.Toggle)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			action := theme.Show
			if len(args) == 1 {
				var err error
				if action, err = theme.ParseAction(args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			svc, done, err := loadService(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := theme.Theme{
				Prefs:  svc.Prefs,
				Action: action,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
