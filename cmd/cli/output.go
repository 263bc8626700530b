package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printAccounts(w io.Writer, accounts []*domain.Account) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTYPE\tACCOUNT\tPIX KEY\tBALANCE\tSTATUS")
	for _, a := range accounts {
		status := "active"
		switch {
		case a.Blocked:
			status = "blocked"
		case !a.Active:
			status = "inactive"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Type, a.DisplayNumber(), truncate(a.PixKey, 24), domain.FormatBRL(a.Balance), status)
	}
	return tw.Flush()
}

func printTransactions(w io.Writer, txns []*dto.TransactionResponse, loc *time.Location) error {
	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, "No transactions.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tDIRECTION\tAMOUNT\tSTATUS\tDESCRIPTION")
	for _, t := range txns {
		direction := "received"
		if t.Sent {
			direction = "sent"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TransactionID, t.CreatedAt.In(loc).Format("2006-01-02 15:04"), t.Type, direction,
			t.AmountDisplay, t.Status, truncate(t.Description, 30))
	}
	return tw.Flush()
}

func printDashboard(w io.Writer, d *dto.DashboardResponse, loc *time.Location) error {
	if d.User != nil {
		fmt.Fprintf(w, "Welcome, %s\n\n", d.User.DisplayName)
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "Total balance\t%s\n", d.Summary.TotalBalanceDisplay)
	fmt.Fprintf(tw, "Accounts\t%d\n", d.Summary.AccountCount)
	fmt.Fprintf(tw, "Sent today\t%d (%s)\n", d.Summary.TodayTransfers.Count, d.Summary.TodayTransfers.AmountDisplay)
	fmt.Fprintf(tw, "Pending\t%d (%s)\n", d.Summary.PendingExposure.Count, d.Summary.PendingExposure.AmountDisplay)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRecent transactions")
	return printTransactions(w, d.RecentTransactions, loc)
}

func printMonthlySummary(w io.Writer, m *dto.MonthlySummaryResponse) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Month\t%s\n", m.Period)
	fmt.Fprintf(tw, "Transactions\t%d\n", m.TotalTransactions)
	fmt.Fprintf(tw, "Total\t%s\n", m.TotalAmountDisplay)
	fmt.Fprintf(tw, "Fees\t%s\n", domain.FormatBRL(m.TotalFees))
	fmt.Fprintf(tw, "Successful\t%d\n", m.Successful)
	fmt.Fprintf(tw, "Failed\t%d\n", m.Failed)
	fmt.Fprintf(tw, "In flight\t%d\n", m.InFlight)
	return tw.Flush()
}
