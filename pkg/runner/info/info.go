package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/config"
)

type Info struct {
	Config  *config.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("LEDGER_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "LEDGER_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "LEDGER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		if n.Config, err = config.Load(); err != nil {
			return err
		}
	}
	source := n.Config.Source
	if source == "" {
		source = "none, using defaults"
	}
	fmt.Fprintln(out, "Config file:", source)
	fmt.Fprintln(out, "Config.mode:", n.Config.Mode)
	fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	fmt.Fprintln(out, "Config.api.url:", n.Config.APIURL)
	fmt.Fprintln(out, "Config.api.timeout:", n.Config.APITimeout)
	fmt.Fprintln(out, "Config.log.level:", n.Config.LogLevel)
	if n.Config.LogFile != "" {
		fmt.Fprintln(out, "Config.log.file:", n.Config.LogFile)
	}

	if n.Service == nil {
		return fmt.Errorf("Failed to create ledger service.")
	}
	if n.Service.Local() {
		if err := n.Service.Load(ctx, 0); err != nil {
			return err
		}
		fmt.Fprintf(out, "Transactions: %d\n", len(n.Service.Entries.Items()))
	}
	return nil
}
