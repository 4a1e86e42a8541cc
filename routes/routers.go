package routes

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/controllers"
	"github.com/BimsaraU/SkyNest-sub000/middleware"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes dựng các service theo thứ tự phụ thuộc rồi gắn route.
// DB/Redis/Cloudinary được inject từ main, không service nào tự với biến toàn cục.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := services.NewLogNotifier(appLogger)

	ledgerService := services.NewLedgerService(db, appLogger)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db, availabilityService, ledgerService, notifier, appLogger)
	usageService := services.NewServiceUsageService(db, ledgerService, appLogger)
	paymentService := services.NewPaymentService(db, ledgerService, notifier, appLogger)
	searchService := services.NewSearchService(db)
	authService := services.NewAuthService(db)

	bookingController := controllers.NewBookingController(db, redisCli, bookingService, availabilityService, ledgerService)
	paymentController := controllers.NewPaymentController(paymentService)
	serviceController := controllers.NewServiceController(db, usageService)
	roomController := controllers.NewRoomController(db, redisCli, cld, searchService)
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(db)

	adminOnly := middleware.AuthMiddleware(constants.RoleAdmin)
	staffOnly := middleware.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin)
	loggedIn := middleware.AuthMiddleware()

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/users", adminOnly, userController.CreateUser)
	v1.GET("/profile", loggedIn, userController.GetProfile)

	v1.GET("/availability", bookingController.CheckAvailability)

	v1.POST("/bookings", loggedIn, bookingController.CreateBooking)
	v1.GET("/bookings", staffOnly, bookingController.GetBookings)
	v1.GET("/bookings/:id", loggedIn, bookingController.GetBookingByID)
	v1.PUT("/bookings/:id/status", loggedIn, bookingController.TransitionStatus)
	v1.GET("/bookings/:id/ledger", loggedIn, bookingController.GetLedger)

	v1.POST("/bookings/:id/services", staffOnly, serviceController.AddServiceToBooking)
	v1.GET("/bookings/:id/services", loggedIn, serviceController.ListBookingServices)
	v1.DELETE("/serviceUsages/:usageId", staffOnly, serviceController.RemoveServiceFromBooking)

	v1.POST("/bookings/:id/payments", staffOnly, paymentController.RecordPayment)
	v1.GET("/bookings/:id/payments", loggedIn, paymentController.ListPayments)

	v1.GET("/services", serviceController.GetServices)
	v1.POST("/services", staffOnly, serviceController.CreateService)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/:id", roomController.GetRoomByID)
	v1.POST("/rooms", staffOnly, roomController.CreateRoom)
	v1.PUT("/rooms/:id/status", staffOnly, roomController.UpdateRoomStatus)
	v1.POST("/rooms/:id/photo", staffOnly, roomController.UploadRoomPhoto)

	v1.GET("/roomTypes", roomController.GetRoomTypes)
	v1.POST("/roomTypes", staffOnly, roomController.CreateRoomType)
}
