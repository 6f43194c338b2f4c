package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	to := &options.TransactionOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a transaction.",
		Long: `Change a transaction.

Local entries take any of --description, --amount and --type; the id and date
never change. Payments take --amount, --currency and --result together; the
transaction id and type never change.`,
		Example: `
ledger edit 3 --amount 2600
ledger --mode remote edit 4f1c --amount 25 --currency USD --result DECLINED
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, done, err := loadService(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			s := edit.Edit{
				Service: svc,
				ID:      args[0],
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			if svc.Local() {
				s.Entry, err = to.EntryPatch(cmd)
			} else {
				s.Payment, err = to.PaymentUpdate()
			}
			if err != nil {
				return oo.HandleError(err)
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTransactionArgs(cmd, to, false)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
