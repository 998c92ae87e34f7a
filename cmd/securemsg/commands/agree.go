package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"securemsg/internal/crypto"
	"securemsg/internal/domain"
	"securemsg/internal/util/memzero"
)

func agreeCmd() *cobra.Command {
	var privB64, peerB64 string

	cmd := &cobra.Command{
		Use:   "agree",
		Short: "Run EC P-256 key agreement between a private key and a peer public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			privDER, err := base64.StdEncoding.DecodeString(privB64)
			if err != nil {
				return fmt.Errorf("decode private key: %w", err)
			}
			peerDER, err := base64.StdEncoding.DecodeString(peerB64)
			if err != nil {
				return fmt.Errorf("decode peer key: %w", err)
			}

			priv := domain.NewPrivateKey(domain.NewByteString(privDER), domain.ECDSAKey)
			peer := domain.NewPublicKey(domain.NewByteString(peerDER), domain.ECDSAKey)
			memzero.Zero(privDER)

			secret, err := crypto.KeyAgreementSHA256(priv, peer)
			if err != nil {
				return err
			}
			raw := secret.Data().Bytes()
			fmt.Printf("shared secret: %s\n", base64.StdEncoding.EncodeToString(raw))
			memzero.Zero(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&privB64, "priv", "", "local private key (PKCS#8 DER, base64)")
	cmd.Flags().StringVar(&peerB64, "peer", "", "peer public key (PKIX DER, base64)")
	_ = cmd.MarkFlagRequired("priv")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}
