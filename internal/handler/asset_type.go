package handler

import (
	"net/http"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssetTypeHandler serves asset classifications.
type AssetTypeHandler struct {
	DB *gorm.DB
}

func NewAssetTypeHandler(db *gorm.DB) *AssetTypeHandler {
	return &AssetTypeHandler{DB: db}
}

type assetTypeReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Unit        string `json:"unit" binding:"max=32"`
	Description string `json:"description" binding:"max=255"`
}

type assetTypeResp struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

func toAssetTypeResp(at *models.AssetType) assetTypeResp {
	return assetTypeResp{
		ID:          at.ID,
		Name:        at.Name,
		Unit:        at.Unit,
		Description: at.Description,
	}
}

func (h *AssetTypeHandler) CreateAssetType(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req assetTypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}

	at := models.AssetType{
		UserID:      user.ID,
		Name:        req.Name,
		Unit:        strings.TrimSpace(req.Unit),
		Description: strings.TrimSpace(req.Description),
	}
	if err := h.DB.Create(&at).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create asset type failed")
		return
	}

	util.Success(c, util.Response{
		"asset_type": toAssetTypeResp(&at),
	})
}

func (h *AssetTypeHandler) ListAssetTypes(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var types []models.AssetType
	if err := h.DB.Where("user_id = ?", user.ID).Order("name ASC").Find(&types).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]assetTypeResp, 0, len(types))
	for i := range types {
		items = append(items, toAssetTypeResp(&types[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

func (h *AssetTypeHandler) UpdateAssetType(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req assetTypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}

	var at models.AssetType
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&at).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "asset type not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	at.Name = req.Name
	at.Unit = strings.TrimSpace(req.Unit)
	at.Description = strings.TrimSpace(req.Description)

	if err := h.DB.Save(&at).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save asset type failed")
		return
	}

	util.Success(c, util.Response{
		"asset_type": toAssetTypeResp(&at),
	})
}

// DeleteAssetType refuses to delete a type that still classifies assets.
func (h *AssetTypeHandler) DeleteAssetType(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var at models.AssetType
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&at).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "asset type not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	var count int64
	if err := h.DB.Model(&models.Asset{}).Where("asset_type_id = ?", at.ID).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "asset type has assets")
		return
	}

	if err := h.DB.Delete(&at).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
