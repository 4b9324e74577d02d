package handler

import (
	"net/http"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetHandler serves owned holdings.
type AssetHandler struct {
	DB *gorm.DB
}

func NewAssetHandler(db *gorm.DB) *AssetHandler {
	return &AssetHandler{DB: db}
}

type assetReq struct {
	AssetTypeID      uint             `json:"asset_type_id" binding:"required"`
	Name             string           `json:"name" binding:"required,max=64"`
	Quantity         decimal.Decimal  `json:"quantity" binding:"required"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	CurrentSellPrice *decimal.Decimal `json:"current_sell_price"`
	PurchaseDate     string           `json:"purchase_date"`
	Note             string           `json:"note" binding:"max=255"`
}

type assetResp struct {
	ID               uint             `json:"id"`
	AssetTypeID      uint             `json:"asset_type_id"`
	AssetTypeName    string           `json:"asset_type_name"`
	Name             string           `json:"name"`
	Quantity         decimal.Decimal  `json:"quantity"`
	PurchasePrice    decimal.Decimal  `json:"purchase_price"`
	CurrentSellPrice *decimal.Decimal `json:"current_sell_price,omitempty"`
	TotalValue       decimal.Decimal  `json:"total_value"`
	PurchaseDate     time.Time        `json:"purchase_date"`
	Note             string           `json:"note"`
}

func toAssetResp(a *models.Asset) assetResp {
	return assetResp{
		ID:               a.ID,
		AssetTypeID:      a.AssetTypeID,
		AssetTypeName:    a.AssetType.Name,
		Name:             a.Name,
		Quantity:         a.Quantity,
		PurchasePrice:    a.PurchasePrice,
		CurrentSellPrice: a.CurrentSellPrice,
		TotalValue:       a.TotalValue(),
		PurchaseDate:     a.PurchaseDate,
		Note:             a.Note,
	}
}

func (h *AssetHandler) resolveAssetType(c *gin.Context, userID, typeID uint) *models.AssetType {
	var at models.AssetType
	if err := h.DB.Where("id = ? AND user_id = ?", typeID, userID).First(&at).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "asset type not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return nil
	}
	return &at
}

func (h *AssetHandler) validatePrices(c *gin.Context, req *assetReq) bool {
	if req.Quantity.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "quantity must not be negative")
		return false
	}
	if req.PurchasePrice != nil && req.PurchasePrice.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "purchase price must not be negative")
		return false
	}
	if req.CurrentSellPrice != nil && req.CurrentSellPrice.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "sell price must not be negative")
		return false
	}
	return true
}

// ---------- create ----------

// CreateAsset applies the pricing defaults: a missing purchase price is
// stored as 1, and the sell price stays unset so valuation follows the
// purchase price until the user records one.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}
	if !h.validatePrices(c, &req) {
		return
	}

	at := h.resolveAssetType(c, user.ID, req.AssetTypeID)
	if at == nil {
		return
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		t, err := util.ParseDateTime(req.PurchaseDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid purchase date")
			return
		}
		purchaseDate = t
	}

	purchasePrice := decimal.NewFromInt(1)
	if req.PurchasePrice != nil {
		purchasePrice = *req.PurchasePrice
	}

	asset := models.Asset{
		UserID:           user.ID,
		AssetTypeID:      at.ID,
		Name:             req.Name,
		Quantity:         req.Quantity,
		PurchasePrice:    purchasePrice,
		CurrentSellPrice: req.CurrentSellPrice,
		PurchaseDate:     purchaseDate,
		Note:             strings.TrimSpace(req.Note),
	}
	if err := h.DB.Create(&asset).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}
	asset.AssetType = *at

	util.Success(c, util.Response{
		"asset": toAssetResp(&asset),
	})
}

// ---------- list ----------

func (h *AssetHandler) ListAssets(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	q := h.DB.Preload("AssetType").Where("user_id = ?", user.ID)
	if s := c.Query("asset_type_id"); s != "" {
		q = q.Where("asset_type_id = ?", s)
	}

	var assets []models.Asset
	if err := q.Order("purchase_date DESC, id DESC").Find(&assets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]assetResp, 0, len(assets))
	for i := range assets {
		items = append(items, toAssetResp(&assets[i]))
	}

	util.Success(c, util.Response{
		"items":             items,
		"total_asset_value": report.TotalAssetValue(assets),
	})
}

// ---------- update ----------

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}
	if !h.validatePrices(c, &req) {
		return
	}

	var asset models.Asset
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&asset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "asset not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	at := h.resolveAssetType(c, user.ID, req.AssetTypeID)
	if at == nil {
		return
	}

	if req.PurchaseDate != "" {
		t, err := util.ParseDateTime(req.PurchaseDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid purchase date")
			return
		}
		asset.PurchaseDate = t
	}

	asset.AssetTypeID = at.ID
	asset.Name = req.Name
	asset.Quantity = req.Quantity
	if req.PurchasePrice != nil {
		asset.PurchasePrice = *req.PurchasePrice
	}
	asset.CurrentSellPrice = req.CurrentSellPrice
	asset.Note = strings.TrimSpace(req.Note)

	if err := h.DB.Save(&asset).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}
	asset.AssetType = *at

	util.Success(c, util.Response{
		"asset": toAssetResp(&asset),
	})
}

// ---------- delete ----------

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Asset{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "asset not found")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
