package controllers

import (
	"context"
	"log"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const roomListCacheKey = "rooms:all"

type RoomController struct {
	db            *gorm.DB
	rdb           *redis.Client
	cld           *cloudinary.Cloudinary
	searchService *services.SearchService
}

func NewRoomController(db *gorm.DB, rdb *redis.Client, cld *cloudinary.Cloudinary,
	searchService *services.SearchService) *RoomController {
	return &RoomController{db: db, rdb: rdb, cld: cld, searchService: searchService}
}

// CreateRoom tạo phòng mới
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var roomType models.RoomType
	if err := ctl.db.First(&roomType, request.RoomTypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.BadRequest(c, "Unknown room type")
			return
		}
		response.ServerError(c)
		return
	}

	room := models.Room{
		BranchID:   request.BranchID,
		RoomNumber: request.RoomNumber,
		RoomTypeID: request.RoomTypeID,
		Status:     constants.RoomStatusAvailable,
	}
	if err := ctl.db.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateRoomCache()
	response.Created(c, room)
}

// GetRooms liệt kê phòng, cache-aside qua Redis
func (ctl *RoomController) GetRooms(c *gin.Context) {
	var rooms []models.Room

	if err := services.GetFromRedis(c.Request.Context(), ctl.rdb, roomListCacheKey, &rooms); err != nil || len(rooms) == 0 {
		if err := ctl.db.Preload("RoomType").Order("room_number asc").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(c.Request.Context(), ctl.rdb, roomListCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Failed to cache room list: %v", err)
		}
	}

	response.Success(c, rooms)
}

// GetRoomByID lấy chi tiết một phòng
func (ctl *RoomController) GetRoomByID(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := ctl.db.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// UpdateRoomStatus đổi trạng thái tĩnh của phòng (available/maintenance).
// Không ảnh hưởng booking đã tồn tại, chỉ chặn availability về sau.
func (ctl *RoomController) UpdateRoomStatus(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var request dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.db.Model(&room).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, room)
}

// SearchRooms tìm phòng theo query tự do
func (ctl *RoomController) SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing search query")
		return
	}

	scored, err := ctl.searchService.SearchRooms(query)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, scored)
}

// UploadRoomPhoto upload ảnh phòng lên Cloudinary rồi gán làm avatar
func (ctl *RoomController) UploadRoomPhoto(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open file")
		return
	}
	defer src.Close()

	resp, err := ctl.cld.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := ctl.db.Model(&room).Update("avatar", resp.SecureURL).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, gin.H{"url": resp.SecureURL})
}

// CreateRoomType tạo loại phòng mới
func (ctl *RoomController) CreateRoomType(c *gin.Context) {
	var request dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType := models.RoomType{
		Name:        request.Name,
		Price:       request.Price,
		Capacity:    request.Capacity,
		Description: request.Description,
	}
	if err := ctl.db.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, roomType)
}

// GetRoomTypes liệt kê các loại phòng
func (ctl *RoomController) GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := ctl.db.Order("price asc").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomTypes)
}

func (ctl *RoomController) invalidateRoomCache() {
	if err := services.DeleteFromRedis(context.Background(), ctl.rdb, roomListCacheKey); err != nil {
		log.Printf("Failed to invalidate room list cache: %v", err)
	}
}
