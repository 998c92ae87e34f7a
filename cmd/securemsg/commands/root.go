package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "securemsg",
		Short:         "Key tooling for the securemsg pairing crypto layer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(keygenCmd(), fingerprintCmd(), agreeCmd())
	return root.Execute()
}
