package handler

import (
	"net/http"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves category CRUD. Categories are a two-level
// tree per user per type; nesting depth and type agreement are
// enforced here at write time.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

type categoryReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	Type     string `json:"type" binding:"required,oneof=income expense"`
	ParentID *uint  `json:"parent_id"`
}

type categoryResp struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

func toCategoryResp(cat *models.Category) categoryResp {
	return categoryResp{
		ID:       cat.ID,
		Name:     cat.Name,
		Type:     cat.Type,
		ParentID: cat.ParentID,
	}
}

// checkParent validates a requested parent: it must exist, belong to
// the user, match the child's type, and itself be top-level.
func (h *CategoryHandler) checkParent(c *gin.Context, userID uint, parentID uint, childID uint, typ string) bool {
	var parent models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", parentID, userID).First(&parent).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parent category not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return false
	}
	if parent.ID == childID {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category cannot be its own parent")
		return false
	}
	if parent.Type != typ {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parent category type mismatch")
		return false
	}
	if parent.ParentID != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "nested categories are limited to one level")
		return false
	}
	return true
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}

	if req.ParentID != nil && !h.checkParent(c, user.ID, *req.ParentID, 0, req.Type) {
		return
	}

	cat := models.Category{
		UserID:   user.ID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
	}
	if err := h.DB.Create(&cat).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create category failed")
		return
	}

	util.Success(c, util.Response{
		"category": toCategoryResp(&cat),
	})
}

// ListCategories returns the user's categories, optionally filtered by
// type, parents before children.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)
	if typ := c.Query("type"); typ == models.TypeIncome || typ == models.TypeExpense {
		q = q.Where("type = ?", typ)
	}

	var cats []models.Category
	if err := q.Order("parent_id IS NOT NULL, name ASC").Find(&cats).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]categoryResp, 0, len(cats))
	for i := range cats {
		items = append(items, toCategoryResp(&cats[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid name")
		return
	}

	var cat models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&cat).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	// type changes must not orphan existing transactions
	if req.Type != cat.Type {
		var count int64
		if err := h.DB.Model(&models.Transaction{}).
			Where("category_id = ?", cat.ID).
			Count(&count).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}
		if count > 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category has transactions, type cannot change")
			return
		}
	}

	if req.ParentID != nil {
		if !h.checkParent(c, user.ID, *req.ParentID, cat.ID, req.Type) {
			return
		}
		// a category that has children must stay top-level
		var children int64
		if err := h.DB.Model(&models.Category{}).
			Where("parent_id = ?", cat.ID).
			Count(&children).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}
		if children > 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category with children cannot have a parent")
			return
		}
	}

	cat.Name = req.Name
	cat.Type = req.Type
	cat.ParentID = req.ParentID

	if err := h.DB.Save(&cat).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save category failed")
		return
	}

	util.Success(c, util.Response{
		"category": toCategoryResp(&cat),
	})
}

// DeleteCategory refuses to delete a category that still has children
// or transactions, keeping report lookups consistent.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var cat models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&cat).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	var children int64
	if err := h.DB.Model(&models.Category{}).Where("parent_id = ?", cat.ID).Count(&children).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if children > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category has child categories")
		return
	}

	var txCount int64
	if err := h.DB.Model(&models.Transaction{}).Where("category_id = ?", cat.ID).Count(&txCount).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if txCount > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category has transactions")
		return
	}

	if err := h.DB.Delete(&cat).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
