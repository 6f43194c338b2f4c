package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	to := &options.TransactionOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction.",
		Example: `
ledger add --description "Coffee with Sam" --amount 4.50 --type withdrawal
ledger --mode remote add --amount 20 --currency EUR --type REFUND --result SUCCESS
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, done, err := loadService(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			s := add.Add{
				Service: svc,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			if svc.Local() {
				s.Entry, err = to.EntryDraft()
			} else {
				s.Payment, err = to.PaymentDraft()
			}
			if err != nil {
				return oo.HandleError(err)
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTransactionArgs(cmd, to, true)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
