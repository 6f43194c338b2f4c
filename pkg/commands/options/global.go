package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/config"
)

// GlobalOptions are persistent flags shared by every command.
type GlobalOptions struct {
	Mode string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Mode, "mode", "",
		`Backing store, "local" or "remote". Overrides the config file.`)
}

// Apply overrides the loaded config with the flags that were set.
func (o *GlobalOptions) Apply(cfg *config.Config) error {
	if o.Mode == "" {
		return nil
	}
	m, err := config.ParseMode(o.Mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	return nil
}
