package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/middleware"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/BimsaraU/SkyNest-sub000/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bookingListCacheKey = "bookings:all"

type BookingController struct {
	db             *gorm.DB
	rdb            *redis.Client
	bookingService *services.BookingService
	availability   *services.AvailabilityService
	ledgerService  *services.LedgerService
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, bookingService *services.BookingService,
	availability *services.AvailabilityService, ledgerService *services.LedgerService) *BookingController {
	return &BookingController{
		db:             db,
		rdb:            rdb,
		bookingService: bookingService,
		availability:   availability,
		ledgerService:  ledgerService,
	}
}

// CheckAvailability kiểm tra phòng trống cho một khoảng ngày
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	checkIn, checkOut, err := validator.ValidateDateRange(query.CheckIn, query.CheckOut)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result, err := ctl.availability.CheckAvailability(query.RoomID, checkIn, checkOut)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBooking tạo booking mới
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	currentUserID, currentRole, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	// Khách chỉ đặt cho chính mình, nhân viên được đặt hộ
	targetUserID := currentUserID
	if request.UserID != 0 && request.UserID != currentUserID {
		if !currentRole.IsStaff() {
			response.Forbidden(c)
			return
		}
		targetUserID = request.UserID
	}

	checkIn, checkOut, err := validator.ValidateDateRange(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	booking, err := ctl.bookingService.CreateBooking(services.CreateBookingInput{
		RoomID:          request.RoomID,
		UserID:          targetUserID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumGuests:       request.NumGuests,
		SpecialRequests: request.SpecialRequests,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctl.invalidateListCache()

	full, err := ctl.bookingService.GetBooking(booking.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.ToBookingResponse(full))
}

// GetBookings liệt kê booking, cache-aside qua Redis, filter theo status/roomId
func (ctl *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var allBookings []models.Booking

	// Lấy danh sách từ cache, miss thì query DB rồi ghi lại cache
	if err := services.GetFromRedis(c.Request.Context(), ctl.rdb, bookingListCacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		if err := ctl.db.Preload("Room").Preload("Room.RoomType").
			Order("updated_at desc").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(c.Request.Context(), ctl.rdb, bookingListCacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Failed to cache booking list: %v", err)
		}
	}

	statusFilter := c.Query("status")
	roomFilter := c.Query("roomId")

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, booking := range allBookings {
		if statusFilter != "" {
			status, ok := constants.ParseBookingStatus(statusFilter)
			if !ok {
				response.BadRequest(c, "Unknown status filter")
				return
			}
			if booking.Status != status {
				continue
			}
		}
		if roomFilter != "" {
			roomID, err := strconv.ParseUint(roomFilter, 10, 64)
			if err != nil || booking.RoomID != uint(roomID) {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for i := range filtered {
		bookingResponses = append(bookingResponses, dto.ToBookingResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingByID lấy chi tiết một booking
func (ctl *BookingController) GetBookingByID(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := ctl.bookingService.GetBooking(bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToBookingResponse(booking))
}

// TransitionStatus chuyển trạng thái booking (confirm, check-in, check-out, cancel, no-show)
func (ctl *BookingController) TransitionStatus(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.TransitionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	target, ok := constants.ParseBookingStatus(request.Status)
	if !ok {
		response.BadRequest(c, fmt.Sprintf("Unknown target status: %s", request.Status))
		return
	}

	_, currentRole, okUser := middleware.CurrentUser(c)
	if !okUser {
		response.Unauthorized(c)
		return
	}

	booking, err := ctl.bookingService.TransitionStatus(bookingID, target, currentRole)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctl.invalidateListCache()
	response.Success(c, dto.ToBookingResponse(booking))
}

// GetLedger trả về sổ thanh toán hiện tại của booking
func (ctl *BookingController) GetLedger(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	ledger, err := ctl.ledgerService.GetLedger(bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, ledger)
}

func (ctl *BookingController) invalidateListCache() {
	if err := services.DeleteFromRedis(context.Background(), ctl.rdb, bookingListCacheKey); err != nil {
		log.Printf("Failed to invalidate booking list cache: %v", err)
	}
}

// parseIDParam parse path param thành uint
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
