package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

func (c *cli) transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send an instant transfer",
	}

	cmd.AddCommand(
		c.transferKindCmd(domain.RecipientInternal, "Transfer to another account at this bank", func(cmd *cobra.Command, f *domain.TransferForm) {
			cmd.Flags().StringVar(&f.ReceiverAccountID, "to", "", "Receiving account id")
		}),
		c.transferKindCmd(domain.RecipientPix, "Transfer to a PIX key", func(cmd *cobra.Command, f *domain.TransferForm) {
			cmd.Flags().StringVar(&f.PixKey, "key", "", "Recipient PIX key")
		}),
		c.transferKindCmd(domain.RecipientExternal, "Transfer to an account at another bank", func(cmd *cobra.Command, f *domain.TransferForm) {
			cmd.Flags().StringVar(&f.ExternalName, "name", "", "Recipient name")
			cmd.Flags().StringVar(&f.ExternalAccount, "account", "", "Recipient account number")
			cmd.Flags().StringVar(&f.ExternalBank, "bank", "", "Recipient bank code")
			cmd.Flags().StringVar(&f.ExternalDocument, "document", "", "Recipient CPF or CNPJ")
		}),
		c.transferStatusCmd(),
	)

	return cmd
}

func (c *cli) transferKindCmd(kind domain.RecipientKind, short string, bind func(*cobra.Command, *domain.TransferForm)) *cobra.Command {
	var (
		from int64
		form = domain.TransferForm{Kind: kind}
	)

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := c.app.Transfers.SubmitTransfer(cmd.Context(), usecase.SubmitTransferInput{
				SenderAccountID: from,
				Form:            form,
			})
			if err != nil {
				return reported(err)
			}
			if txn == nil {
				return nil
			}

			snap := c.app.State.Snapshot()
			resp := dto.TransactionFromDomain(txn, snap.User, snap.Accounts)
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s: %s %s\n", resp.TransactionID, resp.AmountDisplay, resp.Status)
			return err
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "Sending account id")
	cmd.Flags().StringVar(&form.Amount, "amount", "", `Amount, e.g. 150.25 or "1.234,56"`)
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (optional)")
	bind(cmd, &form)

	return cmd
}

func (c *cli) transferStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status TRANSACTION_ID",
		Short: "Show the current state of a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := c.app.Transfers.TransferStatus(cmd.Context(), args[0])
			if err != nil {
				return reported(err)
			}

			snap := c.app.State.Snapshot()
			resp := dto.TransactionFromDomain(txn, snap.User, snap.Accounts)
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s: %s %s\n", resp.TransactionID, resp.AmountDisplay, resp.Status)
			return err
		},
	}
}

func (c *cli) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel TRANSACTION_ID",
		Short: "Cancel a pending transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reported(c.app.Transfers.CancelTransaction(cmd.Context(), args[0]))
		},
	}
}

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show balances, today's transfers and pending exposure",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Dashboard.Recompute()
			resp := dto.DashboardFromSnapshot(c.app.State.Snapshot())

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printDashboard(cmd.OutOrStdout(), resp, c.loc)
		},
	}
}
