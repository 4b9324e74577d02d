package report

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// SumAmounts adds up transaction amounts in a single pass.
func SumAmounts(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for i := range txs {
		sum = sum.Add(txs[i].Amount)
	}
	return sum
}

// Totals sums expenses and incomes independently and derives
// balance = income - expense. No currency rounding is applied.
func Totals(expenses, incomes []models.Transaction) (totalExpense, totalIncome, balance decimal.Decimal) {
	totalExpense = SumAmounts(expenses)
	totalIncome = SumAmounts(incomes)
	balance = totalIncome.Sub(totalExpense)
	return
}
