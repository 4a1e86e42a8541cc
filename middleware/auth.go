package middleware

import (
	"strings"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực JWT và kiểm tra role theo enum đóng.
// Không truyền role nào nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(roles ...constants.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context cho handler phía sau
		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// CurrentUser lấy userID và role đã được middleware gắn vào context
func CurrentUser(c *gin.Context) (uint, constants.Role, bool) {
	userID, okID := c.Get("userID")
	userRole, okRole := c.Get("userRole")
	if !okID || !okRole {
		return 0, 0, false
	}

	id, okID := userID.(uint)
	role, okRole := userRole.(constants.Role)
	if !okID || !okRole {
		return 0, 0, false
	}
	return id, role, true
}
