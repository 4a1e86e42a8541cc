package services

import (
	"os"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/dgrijalva/jwt-go"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken tạo JWT mang userID và role cho user đã đăng nhập
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": user.ID,
			"role":   int(user.Role),
		},
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, constants.Role, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot parse token claims", nil)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "user info missing from token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	roleValue, okRole := userInfo["role"].(float64)
	if !okID || !okRole {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "user id or role missing from token", nil)
	}

	role := constants.Role(int(roleValue))
	if !role.Valid() {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "token carries an unknown role", nil)
	}

	return uint(userID), role, nil
}
