package report

import (
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Statistics is the ranged report for one resolved window.
type Statistics struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Balance           decimal.Decimal `json:"balance"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalValue        decimal.Decimal `json:"total_value"` // ranged balance + assets
	IncomeByCategory  []CategoryTotal `json:"income_by_category"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
}

// OverallTotalValue is net worth over all transactions ever recorded.
type OverallTotalValue struct {
	TotalValue   decimal.Decimal `json:"total_value"` // unranged balance + assets
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalAssets  decimal.Decimal `json:"total_assets"`
}

// Service computes reports. It only reads; each call is a pure function
// of the storage snapshot it fetches, so concurrent calls need no
// coordination. Storage errors propagate unchanged, no retry, no
// partial results.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Statistics resolves the window for rng around ref and aggregates the
// user's transactions in it, pairing the ranged balance with the
// current total asset value.
func (s *Service) Statistics(userID uint, rng Range, ref time.Time) (*Statistics, error) {
	start, end := Resolve(rng, ref)

	cats, err := s.categoryIndex(userID)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if err := s.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC, created_at ASC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	expenses, incomes := splitByType(txs)
	totalExpense, totalIncome, balance := Totals(expenses, incomes)

	totalAssets, err := s.totalAssets(userID)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           balance,
		TotalAssets:       totalAssets,
		TotalValue:        balance.Add(totalAssets),
		IncomeByCategory:  RollupByCategory(incomes, cats),
		ExpenseByCategory: RollupByCategory(expenses, cats),
		StartDate:         start,
		EndDate:           end,
	}, nil
}

// OverallTotalValue aggregates every transaction the user ever recorded
// (no date window) plus the current total asset value. Kept as a
// separate entry point from Statistics: "overall" is unranged by
// contract, not a special case of a ranged query.
func (s *Service) OverallTotalValue(userID uint) (*OverallTotalValue, error) {
	var txs []models.Transaction
	if err := s.DB.
		Where("user_id = ?", userID).
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	expenses, incomes := splitByType(txs)
	totalExpense, totalIncome, balance := Totals(expenses, incomes)

	totalAssets, err := s.totalAssets(userID)
	if err != nil {
		return nil, err
	}

	return &OverallTotalValue{
		TotalValue:   balance.Add(totalAssets),
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		TotalAssets:  totalAssets,
	}, nil
}

func (s *Service) categoryIndex(userID uint) (map[uint]models.Category, error) {
	var cats []models.Category
	if err := s.DB.Where("user_id = ?", userID).Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	index := make(map[uint]models.Category, len(cats))
	for _, c := range cats {
		index[c.ID] = c
	}
	return index, nil
}

func (s *Service) totalAssets(userID uint) (decimal.Decimal, error) {
	var assets []models.Asset
	if err := s.DB.Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return decimal.Zero, fmt.Errorf("fetch assets: %w", err)
	}
	return TotalAssetValue(assets), nil
}

func splitByType(txs []models.Transaction) (expenses, incomes []models.Transaction) {
	for _, tx := range txs {
		if tx.Type == models.TypeIncome {
			incomes = append(incomes, tx)
		} else {
			expenses = append(expenses, tx)
		}
	}
	return
}
