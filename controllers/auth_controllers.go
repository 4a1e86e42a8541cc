package controllers

import (
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login xác thực email/password và trả về JWT
func (ctl *AuthController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := ctl.authService.Login(request.Email, request.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User: dto.ActorResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Role:        user.Role.String(),
		},
	})
}
