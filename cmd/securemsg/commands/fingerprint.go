package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"securemsg/internal/crypto"
	"securemsg/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <public-key-base64>",
		Short: "Print the SHA-256 fingerprint of an encoded public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			der, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode public key: %w", err)
			}
			sum, err := crypto.SHA256(der)
			if err != nil {
				return err
			}
			fmt.Printf("fingerprint: %s\n", domain.NewByteString(sum).DebugHex())
			return nil
		},
	}
	return cmd
}
