package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

func (c *cli) accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(c.accountsListCmd(), c.accountsCreateCmd(), c.accountsUpdateCmd())

	return cmd
}

func (c *cli) accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := c.app.Accounts.Accounts()

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), dto.AccountsFromDomain(accounts))
			}
			return printAccounts(cmd.OutOrStdout(), accounts)
		},
	}
}

func (c *cli) accountsCreateCmd() *cobra.Command {
	var req dto.CreateAccountRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.app.Accounts.CreateAccount(cmd.Context(), req.ToDomain())
			if err != nil {
				return reported(err)
			}

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), dto.AccountFromDomain(account))
			}
			return printAccounts(cmd.OutOrStdout(), []*domain.Account{account})
		},
	}

	cmd.Flags().StringVar(&req.AccountType, "type", string(domain.AccountTypeChecking), "Account type: checking or savings")
	cmd.Flags().StringVar(&req.BankCode, "bank-code", "", "Three-digit bank code")
	cmd.Flags().StringVar(&req.BranchCode, "branch-code", "", "Four-digit branch code")
	cmd.Flags().StringVar(&req.PixKey, "pix-key", "", "PIX key to register (optional)")
	cmd.Flags().StringVar(&req.PixKeyType, "pix-key-type", "", "PIX key type: cpf, email, phone or random")

	return cmd
}

func (c *cli) accountsUpdateCmd() *cobra.Command {
	var (
		pixKey, pixKeyType string
		daily, monthly     string
		active             bool
	)

	cmd := &cobra.Command{
		Use:   "update ACCOUNT_ID",
		Short: "Change an account's PIX key, limits or active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return domain.NewValidationError("account_id", "must be a positive number")
			}

			var req dto.UpdateAccountRequest
			flags := cmd.Flags()
			if flags.Changed("pix-key") {
				req.PixKey = &pixKey
			}
			if flags.Changed("pix-key-type") {
				req.PixKeyType = &pixKeyType
			}
			if flags.Changed("active") {
				req.IsActive = &active
			}
			req.DailyLimit = dto.Text(daily)
			req.MonthlyLimit = dto.Text(monthly)

			update, err := req.ToDomain()
			if err != nil {
				return err
			}

			account, err := c.app.Accounts.UpdateAccount(cmd.Context(), id, update)
			if err != nil {
				return reported(err)
			}

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), dto.AccountFromDomain(account))
			}
			return printAccounts(cmd.OutOrStdout(), []*domain.Account{account})
		},
	}

	cmd.Flags().StringVar(&pixKey, "pix-key", "", "New PIX key")
	cmd.Flags().StringVar(&pixKeyType, "pix-key-type", "", "PIX key type: cpf, email, phone or random")
	cmd.Flags().StringVar(&daily, "daily-limit", "", "New daily transfer limit")
	cmd.Flags().StringVar(&monthly, "monthly-limit", "", "New monthly transfer limit")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the account accepts transfers")

	return cmd
}
