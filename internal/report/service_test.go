package report

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// a single connection so every query sees the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.AssetType{},
		&models.Asset{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Username: "alice", PasswordHash: "x"}
	mustCreate(t, db, user)
	return user
}

type seedTx struct {
	typ    string
	amount string
	date   time.Time
	catID  uint
}

func seedTransactions(t *testing.T, db *gorm.DB, userID uint, txs []seedTx) {
	t.Helper()
	for _, s := range txs {
		mustCreate(t, db, &models.Transaction{
			UserID:     userID,
			CategoryID: s.catID,
			Type:       s.typ,
			Amount:     decimal.RequireFromString(s.amount),
			Date:       s.date,
		})
	}
}

// End-to-end month window: a February 28 expense stays outside the
// March window, the March 1 expense rolls up under the parent.
func TestStatistics_MonthWindowWithRollup(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	food := models.Category{UserID: user.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &food)
	snacks := models.Category{UserID: user.ID, Name: "Snacks", Type: models.TypeExpense, ParentID: &food.ID}
	mustCreate(t, db, &snacks)

	seedTransactions(t, db, user.ID, []seedTx{
		{models.TypeExpense, "200", time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), snacks.ID},
		{models.TypeExpense, "50", time.Date(2024, time.February, 28, 10, 0, 0, 0, time.UTC), food.ID},
	})

	svc := NewService(db)
	ref := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	stats, err := svc.Statistics(user.ID, RangeMonth, ref)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if !stats.TotalExpense.Equal(decimal.NewFromInt(200)) {
		t.Errorf("totalExpense = %s, want 200 (Feb 28 must be excluded)", stats.TotalExpense)
	}
	if len(stats.ExpenseByCategory) != 1 {
		t.Fatalf("expenseByCategory has %d buckets, want 1: %+v", len(stats.ExpenseByCategory), stats.ExpenseByCategory)
	}
	b := stats.ExpenseByCategory[0]
	if b.CategoryID != food.ID || b.CategoryName != "Food" || !b.Total.Equal(decimal.NewFromInt(200)) || b.Count != 1 {
		t.Errorf("bucket = %+v, want {Food, 200, 1}", b)
	}
	if !stats.Balance.Equal(stats.TotalIncome.Sub(stats.TotalExpense)) {
		t.Errorf("balance = %s, want income - expense", stats.Balance)
	}
}

// A transaction exactly at startDate is in, one a millisecond before is
// out, one exactly at endDate (23:59:59.999 of the reference day) is in.
func TestStatistics_WindowBoundaries(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	cat := models.Category{UserID: user.ID, Name: "Misc", Type: models.TypeExpense}
	mustCreate(t, db, &cat)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.UTC)

	seedTransactions(t, db, user.ID, []seedTx{
		{models.TypeExpense, "1", start, cat.ID},
		{models.TypeExpense, "10", start.Add(-time.Millisecond), cat.ID},
		{models.TypeExpense, "100", end, cat.ID},
		{models.TypeExpense, "1000", end.Add(time.Millisecond), cat.ID},
	})

	svc := NewService(db)
	ref := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	stats, err := svc.Statistics(user.ID, RangeMonth, ref)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if !stats.StartDate.Equal(start) || !stats.EndDate.Equal(end) {
		t.Errorf("window = [%v, %v], want [%v, %v]", stats.StartDate, stats.EndDate, start, end)
	}
	if !stats.TotalExpense.Equal(decimal.NewFromInt(101)) {
		t.Errorf("totalExpense = %s, want 101 (boundary-inclusive on both ends)", stats.TotalExpense)
	}
}

func TestStatistics_CategorySumsMatchTotals(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	salary := models.Category{UserID: user.ID, Name: "Salary", Type: models.TypeIncome}
	mustCreate(t, db, &salary)
	food := models.Category{UserID: user.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &food)
	rent := models.Category{UserID: user.ID, Name: "Rent", Type: models.TypeExpense}
	mustCreate(t, db, &rent)

	day := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	seedTransactions(t, db, user.ID, []seedTx{
		{models.TypeIncome, "2500.50", day, salary.ID},
		{models.TypeExpense, "300.25", day, food.ID},
		{models.TypeExpense, "900", day.Add(time.Hour), rent.ID},
	})

	svc := NewService(db)
	stats, err := svc.Statistics(user.ID, RangeMonth, day)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	sumExpense := decimal.Zero
	for _, b := range stats.ExpenseByCategory {
		sumExpense = sumExpense.Add(b.Total)
	}
	if !sumExpense.Equal(stats.TotalExpense) {
		t.Errorf("sum of expense buckets %s != totalExpense %s", sumExpense, stats.TotalExpense)
	}

	sumIncome := decimal.Zero
	for _, b := range stats.IncomeByCategory {
		sumIncome = sumIncome.Add(b.Total)
	}
	if !sumIncome.Equal(stats.TotalIncome) {
		t.Errorf("sum of income buckets %s != totalIncome %s", sumIncome, stats.TotalIncome)
	}
}

func TestStatistics_Idempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	cat := models.Category{UserID: user.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &cat)
	day := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	seedTransactions(t, db, user.ID, []seedTx{
		{models.TypeExpense, "42.42", day, cat.ID},
	})

	svc := NewService(db)
	first, err := svc.Statistics(user.ID, RangeWeek, day)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	second, err := svc.Statistics(user.ID, RangeWeek, day)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if !first.TotalExpense.Equal(second.TotalExpense) ||
		!first.Balance.Equal(second.Balance) ||
		len(first.ExpenseByCategory) != len(second.ExpenseByCategory) {
		t.Errorf("repeated call differs: %+v vs %+v", first, second)
	}
}

// Overall ignores the date entirely while Statistics windows; both pair
// their balance with the same asset value.
func TestOverallTotalValue_UnrangedVsRanged(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	salary := models.Category{UserID: user.ID, Name: "Salary", Type: models.TypeIncome}
	mustCreate(t, db, &salary)
	food := models.Category{UserID: user.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &food)

	seedTransactions(t, db, user.ID, []seedTx{
		{models.TypeIncome, "1000", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), salary.ID},
		{models.TypeExpense, "400", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), food.ID},
	})

	at := models.AssetType{UserID: user.ID, Name: "Gold", Unit: "tael"}
	mustCreate(t, db, &at)
	sell := decimal.NewFromInt(80)
	mustCreate(t, db, &models.Asset{
		UserID:        user.ID,
		AssetTypeID:   at.ID,
		Name:          "bars",
		Quantity:      decimal.NewFromInt(2),
		PurchasePrice: decimal.NewFromInt(75),
		CurrentSellPrice: &sell,
		PurchaseDate:  time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
	})

	svc := NewService(db)

	overall, err := svc.OverallTotalValue(user.ID)
	if err != nil {
		t.Fatalf("OverallTotalValue: %v", err)
	}
	// balance 600 + assets 160
	if !overall.TotalAssets.Equal(decimal.NewFromInt(160)) {
		t.Errorf("overall totalAssets = %s, want 160", overall.TotalAssets)
	}
	if !overall.TotalValue.Equal(decimal.NewFromInt(760)) {
		t.Errorf("overall totalValue = %s, want 760", overall.TotalValue)
	}
	if !overall.TotalIncome.Equal(decimal.NewFromInt(1000)) || !overall.TotalExpense.Equal(decimal.NewFromInt(400)) {
		t.Errorf("overall totals = %s/%s, want 1000/400", overall.TotalIncome, overall.TotalExpense)
	}

	// ranged June 2024 view sees only the expense; 2020 income is out
	stats, err := svc.Statistics(user.ID, RangeMonth, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if !stats.Balance.Equal(decimal.NewFromInt(-400)) {
		t.Errorf("ranged balance = %s, want -400", stats.Balance)
	}
	if !stats.TotalValue.Equal(decimal.NewFromInt(-240)) {
		t.Errorf("ranged totalValue = %s, want -240 (ranged balance + assets)", stats.TotalValue)
	}
	if !stats.TotalAssets.Equal(overall.TotalAssets) {
		t.Errorf("ranged totalAssets %s != overall totalAssets %s", stats.TotalAssets, overall.TotalAssets)
	}
}

// Transactions of another user never leak into a report.
func TestStatistics_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db)
	bob := &models.User{Username: "bob", PasswordHash: "x"}
	mustCreate(t, db, bob)

	aliceCat := models.Category{UserID: alice.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &aliceCat)
	bobCat := models.Category{UserID: bob.ID, Name: "Food", Type: models.TypeExpense}
	mustCreate(t, db, &bobCat)

	day := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	seedTransactions(t, db, alice.ID, []seedTx{{models.TypeExpense, "10", day, aliceCat.ID}})
	seedTransactions(t, db, bob.ID, []seedTx{{models.TypeExpense, "999", day, bobCat.ID}})

	svc := NewService(db)
	stats, err := svc.Statistics(alice.ID, RangeDay, day)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if !stats.TotalExpense.Equal(decimal.NewFromInt(10)) {
		t.Errorf("totalExpense = %s, want 10 (bob's records must not leak)", stats.TotalExpense)
	}
}
