package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	page := 0

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List one page of transactions, newest first.",
		Example: `
ledger list
ledger list --page 2
ledger --mode remote list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, done, err := loadService(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := list.List{
				Service: svc,
				Page:    page,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show, starting at 1.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
