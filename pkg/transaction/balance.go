package transaction

import "github.com/shopspring/decimal"

// Balance is the signed sum of entries: deposits add, withdrawals subtract.
// It is always recomputed from the full collection.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Signed())
	}
	return total
}
