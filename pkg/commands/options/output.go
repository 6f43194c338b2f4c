package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/errs"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as {"error": "..."} when JSON output is on, using
// the user-facing message for known errors.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		msg := errs.UserMessage(err)
		if msg == errs.MsgUnexpected {
			msg = err.Error()
		}
		out := map[string]string{
			"error": msg,
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
