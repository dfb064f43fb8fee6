package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"TradeSentinel/internal/model"
)

// FormatRunReport formats one pass's result set into a Telegram message.
func FormatRunReport(run *model.RunResult, account model.Account) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>TradeSentinel pass</b> | %s\n\n", run.StartedAt.Format("2006-01-02 15:04")))

	entered, exited, errored := 0, 0, 0
	for _, row := range run.Rows {
		switch {
		case row.Err != "":
			errored++
		case row.Action == model.ActionEnter:
			entered++
			b.WriteString(fmt.Sprintf("✅ %s (%s) enter at %.2f, tp %.2f / sl %.2f\n",
				row.Name, row.Code, row.Price, row.TakeProfit, row.StopLoss))
			if row.Exec != nil {
				b.WriteString(fmt.Sprintf("   order: %s\n", row.Exec.Message))
			}
		case row.Action == model.ActionExit:
			exited++
			b.WriteString(fmt.Sprintf("❌ %s (%s) exit at %.2f\n", row.Name, row.Code, row.Price))
			if row.Exec != nil {
				b.WriteString(fmt.Sprintf("   order: %s\n", row.Exec.Message))
			}
		}
	}

	b.WriteString(fmt.Sprintf("\ninstruments: %d | entries: %d | exits: %d | errors: %d\n",
		len(run.Rows), entered, exited, errored))
	b.WriteString(fmt.Sprintf("expected profit this pass: %+.2f\n", run.ExpectedProfit))
	b.WriteString(FormatAccountStatus(account))
	return b.String()
}

// FormatAccountStatus formats the cumulative profit ledger for display.
func FormatAccountStatus(account model.Account) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n💰 cumulative profit: %+.0f (%.2f%% of %.0f)\n",
		account.TotalProfit, account.DailyReturn(), account.InitialCapital))
	b.WriteString(fmt.Sprintf("🎯 daily target: %.1f%%\n", account.DailyProfitTarget))
	if !account.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("updated: %s\n", account.UpdatedAt.Format(time.DateTime)))
	}
	return b.String()
}

// FormatRSI renders an oscillator value, dashing out undefined ones.
func FormatRSI(rsi float64) string {
	if math.IsNaN(rsi) {
		return "-"
	}
	return fmt.Sprintf("%.2f", rsi)
}
