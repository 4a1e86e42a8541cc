package services

import (
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService xử lý đăng nhập tối thiểu để phát JWT.
// Đăng ký, OTP, session đầy đủ thuộc hệ thống identity bên ngoài.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login xác thực email/password và trả về JWT
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidPassword
	}

	token, err := GenerateToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// HashPassword băm mật khẩu trước khi lưu
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
