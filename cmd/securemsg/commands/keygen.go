package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"securemsg/internal/crypto"
	"securemsg/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	var keyType string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate key material (aes, ec or rsa)",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch keyType {
			case "aes":
				key, err := crypto.GenerateAES256SecretKey()
				if err != nil {
					return err
				}
				raw := key.Data().Bytes()
				fmt.Printf("secret: %s\n", base64.StdEncoding.EncodeToString(raw))
				memzero.Zero(raw)
				return nil

			case "ec":
				pair, err := crypto.GenerateECP256KeyPair()
				if err != nil {
					return err
				}
				return printPair(pair.Private.Data().Bytes(), pair.Public.Data().Bytes())

			case "rsa":
				pair, err := crypto.GenerateRSA2048KeyPair()
				if err != nil {
					return err
				}
				return printPair(pair.Private.Data().Bytes(), pair.Public.Data().Bytes())
			}
			return fmt.Errorf("unknown key type %q (want aes, ec or rsa)", keyType)
		},
	}

	cmd.Flags().StringVarP(&keyType, "type", "t", "ec", "key type: aes, ec or rsa")
	return cmd
}

func printPair(privDER, pubDER []byte) error {
	fmt.Printf("private: %s\n", base64.StdEncoding.EncodeToString(privDER))
	fmt.Printf("public:  %s\n", base64.StdEncoding.EncodeToString(pubDER))
	memzero.Zero(privDER)
	return nil
}
