package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler serves expense/income records.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// ---------- request/response ----------

type transactionReq struct {
	Type       string          `json:"type" binding:"required,oneof=income expense"`
	CategoryID uint            `json:"category_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Note       string          `json:"note" binding:"max=255"`
	Date       string          `json:"date"`
}

type transactionResp struct {
	ID           uint            `json:"id"`
	Type         string          `json:"type"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toTransactionResp(tx *models.Transaction) transactionResp {
	return transactionResp{
		ID:           tx.ID,
		Type:         tx.Type,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.Category.Name,
		Amount:       tx.Amount,
		Note:         tx.Note,
		Date:         tx.Date,
		CreatedAt:    tx.CreatedAt,
	}
}

// resolveCategory loads the category and checks ownership and type
// agreement with the transaction.
func (h *TransactionHandler) resolveCategory(c *gin.Context, userID, categoryID uint, txType string) *models.Category {
	var cat models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", categoryID, userID).First(&cat).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return nil
	}
	if cat.Type != txType {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category type does not match transaction type")
		return nil
	}
	return &cat
}

func (h *TransactionHandler) parseDate(c *gin.Context, raw string) (time.Time, bool) {
	date := time.Now()
	if raw != "" {
		t, err := util.ParseDateTime(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
			return time.Time{}, false
		}
		date = t
	}
	// no future-dated records
	if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date cannot be in the future")
		return time.Time{}, false
	}
	return date, true
}

// ---------- create ----------

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	cat := h.resolveCategory(c, user.ID, req.CategoryID, req.Type)
	if cat == nil {
		return
	}

	date, ok := h.parseDate(c, req.Date)
	if !ok {
		return
	}

	tx := models.Transaction{
		UserID:     user.ID,
		CategoryID: cat.ID,
		Type:       req.Type,
		Amount:     req.Amount,
		Note:       strings.TrimSpace(req.Note),
		Date:       date,
	}
	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}
	tx.Category = *cat

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&tx),
	})
}

// ---------- update ----------

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	// only the owner's record can change
	var tx models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	cat := h.resolveCategory(c, user.ID, req.CategoryID, req.Type)
	if cat == nil {
		return
	}

	date, ok := h.parseDate(c, req.Date)
	if !ok {
		return
	}

	tx.Type = req.Type
	tx.CategoryID = cat.ID
	tx.Amount = req.Amount
	tx.Note = strings.TrimSpace(req.Note)
	tx.Date = date

	if err := h.DB.Save(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}
	tx.Category = *cat

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&tx),
	})
}

// ---------- list ----------

// ListTransactions supports date range, type, category filters,
// pagination and sorting, plus a totals summary under the same filters.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var (
		startTime time.Time
		endTime   time.Time
		hasStart  bool
		hasEnd    bool
		err       error
	)

	if s := c.Query("start"); s != "" {
		startTime, err = time.Parse("2006-01-02", s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "start date must be YYYY-MM-DD")
			return
		}
		hasStart = true
	}
	if s := c.Query("end"); s != "" {
		endTime, err = time.Parse("2006-01-02", s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "end date must be YYYY-MM-DD")
			return
		}
		// end day is inclusive: < end+1d
		endTime = endTime.Add(24 * time.Hour)
		hasEnd = true
	}

	// default to the last 30 days when no range is given
	if !hasStart && !hasEnd {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		startTime = today.AddDate(0, 0, -29)
		endTime = today.AddDate(0, 0, 1)
		hasStart, hasEnd = true, true
	}

	txType := c.Query("type")
	if txType != models.TypeIncome && txType != models.TypeExpense {
		txType = ""
	}

	var catID int
	if s := c.Query("category_id"); s != "" {
		catID, _ = strconv.Atoi(s)
	}

	sortKey := c.DefaultQuery("sort", "date_desc")
	orderBy := "date DESC, created_at DESC, id DESC"
	switch sortKey {
	case "date_asc":
		orderBy = "date ASC, created_at ASC, id ASC"
	case "amount_desc":
		orderBy = "amount DESC, id DESC"
	case "amount_asc":
		orderBy = "amount ASC, id ASC"
	}

	base := h.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if hasStart {
		base = base.Where("date >= ?", startTime)
	}
	if hasEnd {
		base = base.Where("date < ?", endTime)
	}
	if txType != "" {
		base = base.Where("type = ?", txType)
	}
	if catID > 0 {
		base = base.Where("category_id = ?", catID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var txs []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Preload("Category").
		Order(orderBy).
		Limit(size).
		Offset(offset).
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResp(&txs[i]))
	}

	// totals under the same filters
	var all []models.Transaction
	if err := base.Session(&gorm.Session{}).Find(&all).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for i := range all {
		if all[i].Type == models.TypeIncome {
			totalIncome = totalIncome.Add(all[i].Amount)
		} else {
			totalExpense = totalExpense.Add(all[i].Amount)
		}
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
		"summary": gin.H{
			"total_income":  totalIncome,
			"total_expense": totalExpense,
			"balance":       totalIncome.Sub(totalExpense),
		},
	})
}

// ---------- delete ----------

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Transaction{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
