package handler

import (
	"net/http"

	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingHandler serves per-user display preferences.
type SettingHandler struct {
	DB *gorm.DB
}

func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{DB: db}
}

type settingResp struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Currency string `json:"currency"`
}

// getOrCreate loads the user's settings row, lazily creating it with
// light/en/USD defaults on first access.
func (h *SettingHandler) getOrCreate(userID uint) (*models.UserSetting, error) {
	var s models.UserSetting
	err := h.DB.Where("user_id = ?", userID).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	s = models.UserSetting{
		UserID:   userID,
		Theme:    models.ThemeLight,
		Language: models.DefaultLanguage,
		Currency: models.CurrencyUSD,
	}
	if err := h.DB.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	s, err := h.getOrCreate(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query settings failed")
		return
	}

	util.Success(c, util.Response{
		"settings": settingResp{
			Theme:    s.Theme,
			Language: s.Language,
			Currency: s.Currency,
		},
	})
}

type updateSettingReq struct {
	Theme    string `json:"theme" binding:"required,oneof=light dark"`
	Language string `json:"language" binding:"required,max=8"`
	Currency string `json:"currency" binding:"required,oneof=USD VND"`
}

func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req updateSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	s, err := h.getOrCreate(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query settings failed")
		return
	}

	s.Theme = req.Theme
	s.Language = req.Language
	s.Currency = req.Currency

	if err := h.DB.Save(s).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save settings failed")
		return
	}

	util.Success(c, util.Response{
		"settings": settingResp{
			Theme:    s.Theme,
			Language: s.Language,
			Currency: s.Currency,
		},
	})
}
