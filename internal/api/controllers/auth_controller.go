package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"keliauk/internal/models/request_models"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

func (a *AuthController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Įveskite teisingą el. pašto adresą ir slaptažodį")
		return
	}

	pending, err := a.accountService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pending, "Patvirtinimo kodas išsiųstas")
}

func (a *AuthController) VerifyTwoFactor(c *gin.Context) {
	var request request_models.VerifyTwoFactorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.accountService.VerifyTwoFactor(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Prisijungta sėkmingai")
}

func (a *AuthController) Register(c *gin.Context) {
	var request request_models.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Patikrinkite registracijos duomenis")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Paskyra sukurta")
}

func (a *AuthController) ForgotPassword(c *gin.Context) {
	var request request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := a.accountService.RequestPasswordReset(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var data interface{}
	if token != "" {
		data = gin.H{"token": token}
	}
	utils.RespondSuccess(c, data, "Jei paskyra egzistuoja, atkūrimo nuoroda išsiųsta")
}

func (a *AuthController) ResetPassword(c *gin.Context) {
	var request request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Slaptažodis pakeistas")
}

func (a *AuthController) GetProfile(c *gin.Context) {
	account, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile fetched successfully")
}

func (a *AuthController) UpdateProfile(c *gin.Context) {
	var request request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := a.accountService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profilis atnaujintas")
}
