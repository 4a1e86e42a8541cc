package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp khởi tạo gin engine với CORS
func InitApp() *gin.Engine {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	return router
}
