package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

func (c *cli) transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Transaction operations",
	}

	cmd.AddCommand(
		c.transactionsRecentCmd(),
		c.transactionsHistoryCmd(),
		c.transactionsExportCmd(),
		c.transactionsSummaryCmd(),
	)

	return cmd
}

func (c *cli) printTransactionList(cmd *cobra.Command, txns []*domain.Transaction) error {
	snap := c.app.State.Snapshot()
	resp := dto.TransactionsFromDomain(txns, snap.User, snap.Accounts)

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	return printTransactions(cmd.OutOrStdout(), resp, c.loc)
}

func (c *cli) transactionsRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printTransactionList(cmd, c.app.Transactions.RecentTransactions())
		},
	}
}

// dateRange holds the --from/--to flags shared by history and export.
type dateRange struct {
	from string
	to   string
}

func (d *dateRange) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.from, "from", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&d.to, "to", "", "End date, YYYY-MM-DD")
}

func (c *cli) filter(d dateRange) (domain.TransactionFilter, error) {
	start, err := domain.ParseDate("start_date", d.from, c.loc)
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	end, err := domain.ParseDate("end_date", d.to, c.loc)
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	return domain.TransactionFilter{StartDate: start, EndDate: end}, nil
}

func (c *cli) transactionsHistoryCmd() *cobra.Command {
	var (
		dates   dateRange
		limit   int
		status  string
		account int64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Search the transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := c.filter(dates)
			if err != nil {
				return err
			}
			filter.Limit = limit
			filter.Status = domain.TransactionStatus(status)
			filter.AccountID = account

			txns, err := c.app.Transactions.LoadTransactionHistory(cmd.Context(), filter)
			if err != nil {
				return reported(err)
			}

			return c.printTransactionList(cmd, txns)
		},
	}

	dates.bind(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default 50, at most 100)")
	cmd.Flags().StringVar(&status, "status", "", "Only transactions with this status")
	cmd.Flags().Int64Var(&account, "account", 0, "Only transactions of this account (no date or status filters)")

	return cmd
}

func (c *cli) transactionsExportCmd() *cobra.Command {
	var (
		dates  dateRange
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			filter, err := c.filter(dates)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, ferr := os.Create(output)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}

			if _, err := c.app.Transactions.ExportTransactionsCSV(cmd.Context(), filter, w); err != nil {
				return reported(err)
			}

			return nil
		},
	}

	dates.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func (c *cli) transactionsSummaryCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the server's monthly totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var period domain.Period
			if year != 0 || month != 0 {
				period = domain.Period{Year: year, Month: time.Month(month)}
			}

			summary, err := c.app.Transactions.LoadMonthlySummary(cmd.Context(), period)
			if err != nil {
				return reported(err)
			}

			resp := dto.MonthlySummaryFromDomain(summary)
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printMonthlySummary(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to the current month)")
	cmd.Flags().IntVar(&month, "month", 0, "Month, 1-12")

	return cmd
}
