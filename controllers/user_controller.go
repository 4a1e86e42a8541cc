package controllers

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/middleware"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// CreateUser tạo tài khoản mới, chỉ admin gọi được
func (ctl *UserController) CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	role := constants.Role(request.Role)
	if !role.Valid() {
		response.BadRequest(c, "Unknown role")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        role,
		BranchIDs:   pq.Int64Array(request.BranchIDs),
	}
	if err := user.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hashed, err := services.HashPassword(request.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	if err := ctl.db.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.ActorResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role.String(),
	})
}

// GetProfile trả về thông tin user đang đăng nhập
func (ctl *UserController) GetProfile(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := ctl.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ActorResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role.String(),
	})
}
