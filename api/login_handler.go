package api

import (
	"net/http"

	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/internal/auth"

	"github.com/gin-gonic/gin"
)

// LoginHandler 登录处理器
type LoginHandler struct {
	loginService *auth.LoginService
}

// NewLoginHandler 使用 LoginService 创建登录处理器
func NewLoginHandler(loginService *auth.LoginService) *LoginHandler {
	return &LoginHandler{loginService: loginService}
}

type loginRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken       string `json:"access_token"`
	AccessTokenExpiry int64  `json:"access_token_expiry"`
	UserID            uint   `json:"user_id"`
	Name              string `json:"name"`
}

// LoginHandlerFunc user login
func (h *LoginHandler) LoginHandlerFunc(context *gin.Context) {
	var req loginRequestBody
	if err := context.ShouldBindJSON(&req); err != nil {
		common.RespondError(context, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginService.Login(context.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondServiceError(context, err)
		return
	}

	common.Respond(context, http.StatusOK, "success", "Login successful", loginResponse{
		AccessToken:       "Bearer " + result.AccessToken,
		AccessTokenExpiry: result.AccessTokenExpiry.Unix(),
		UserID:            result.User.ID,
		Name:              result.User.Name,
	})
}

// RegisterHandlerFunc user registration
func (h *LoginHandler) RegisterHandlerFunc(context *gin.Context) {
	var req registerRequestBody
	if err := context.ShouldBindJSON(&req); err != nil {
		common.RespondError(context, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.loginService.Register(context.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		common.RespondServiceError(context, err)
		return
	}

	common.RespondSuccess(context, user)
}
