// Command hashpw prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"agency-backend/internal/auth"

	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "hashpw [password]",
		Short: "Print a bcrypt hash for the admin password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
		SilenceUsage: true,
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
