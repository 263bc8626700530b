package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/domain"
)

func (c *cli) loginCmd() *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and remember the session",
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Password == "" {
				password, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}
				creds.Password = password
			}

			if err := c.app.Session.Login(cmd.Context(), creds); err != nil {
				return reported(err)
			}

			return c.printStatus(cmd)
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Sign out and forget the stored session",
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Session.Logout(cmd.Context())
			return nil
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:         "register",
		Short:       "Create a user; sign in afterwards with login",
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Password == "" {
				password, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}
				reg.Password = password
			}

			return reported(c.app.Session.Register(cmd.Context(), reg))
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "Email")
	cmd.Flags().StringVar(&reg.Username, "username", "", "Username")
	cmd.Flags().StringVar(&reg.FullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&reg.CPF, "cpf", "", "CPF (optional)")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printStatus(cmd)
		},
	}
}

func (c *cli) sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the session and its credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printStatus(cmd)
		},
	})

	return cmd
}

func (c *cli) printStatus(cmd *cobra.Command) error {
	now := time.Now().In(c.loc)
	status := dto.SessionFromStatus(c.app.Session.Status(), presenter.View{}, now)

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), status)
	}

	w := cmd.OutOrStdout()
	if !status.Authenticated || status.User == nil {
		_, err := fmt.Fprintln(w, "Not signed in.")
		return err
	}

	fmt.Fprintf(w, "Signed in as %s <%s>\n", status.User.DisplayName, status.User.Email)
	if status.Token != nil && status.Token.ExpiresAt != nil {
		state := "valid until"
		if status.Token.Expired {
			state = "expired at"
		}
		fmt.Fprintf(w, "Session %s %s\n", state, status.Token.ExpiresAt.In(c.loc).Format(time.RFC1123))
	}

	return nil
}

// prompt reads one line from in after writing label to out.
func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
