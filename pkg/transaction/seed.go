package transaction

import "github.com/shopspring/decimal"

// Seed returns the example collection used when no ledger has been stored yet.
func Seed() []Entry {
	return []Entry{
		{ID: 1, Description: "Initial Bank Account Opening Deposit", Amount: decimal.RequireFromString("1000.00"), Date: "2024-03-20", Type: Deposit},
		{ID: 2, Description: "Walmart Grocery Shopping - Weekly Essentials", Amount: decimal.RequireFromString("85.50"), Date: "2024-03-21", Type: Withdrawal},
		{ID: 3, Description: "Monthly Salary from Tech Corp Inc.", Amount: decimal.RequireFromString("2500.00"), Date: "2024-03-22", Type: Deposit},
		{ID: 4, Description: "Rent Payment - March 2024", Amount: decimal.RequireFromString("1200.00"), Date: "2024-03-23", Type: Withdrawal},
		{ID: 5, Description: "Car Insurance - Quarterly Premium", Amount: decimal.RequireFromString("275.00"), Date: "2024-03-23", Type: Withdrawal},
		{ID: 6, Description: "Freelance Web Development Project", Amount: decimal.RequireFromString("850.00"), Date: "2024-03-24", Type: Deposit},
	}
}
