package dashboard

import "github.com/shopspring/decimal"

// Summary is the back-office landing page aggregate.
type Summary struct {
	ActiveAthletes      int             `json:"active_athletes"`
	ActiveSubscriptions int             `json:"active_subscriptions"`
	SessionsToday       int             `json:"sessions_today"`
	PendingInvoices     int             `json:"pending_invoices"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	RevenueThisMonth    decimal.Decimal `json:"revenue_this_month"`
	ExpensesThisMonth   decimal.Decimal `json:"expenses_this_month"`
}
