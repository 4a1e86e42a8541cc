package controllers

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceController struct {
	db           *gorm.DB
	usageService *services.ServiceUsageService
}

func NewServiceController(db *gorm.DB, usageService *services.ServiceUsageService) *ServiceController {
	return &ServiceController{db: db, usageService: usageService}
}

// CreateService thêm dịch vụ mới vào catalog
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	service := models.Service{
		Name:        request.Name,
		Price:       request.Price,
		Status:      constants.ServiceStatusActive,
		Description: request.Description,
	}
	if err := ctl.db.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, service)
}

// GetServices liệt kê catalog dịch vụ
func (ctl *ServiceController) GetServices(c *gin.Context) {
	var serviceList []models.Service
	if err := ctl.db.Order("name asc").Find(&serviceList).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, serviceList)
}

// AddServiceToBooking cộng một dòng dịch vụ vào booking
func (ctl *ServiceController) AddServiceToBooking(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.AddServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	usage, err := ctl.usageService.AddService(bookingID, request.ServiceID, request.Quantity, request.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, dto.ToServiceUsageResponse(usage))
}

// RemoveServiceFromBooking gỡ một dòng dịch vụ khỏi booking
func (ctl *ServiceController) RemoveServiceFromBooking(c *gin.Context) {
	usageID, err := parseIDParam(c, "usageId")
	if err != nil {
		response.BadRequest(c, "Invalid usage id")
		return
	}

	if err := ctl.usageService.RemoveService(usageID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": usageID})
}

// ListBookingServices liệt kê các dòng dịch vụ của booking
func (ctl *ServiceController) ListBookingServices(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	usages, err := ctl.usageService.ListServiceUsages(bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	usageResponses := make([]dto.ServiceUsageResponse, 0, len(usages))
	for i := range usages {
		usageResponses = append(usageResponses, dto.ToServiceUsageResponse(&usages[i]))
	}

	response.Success(c, usageResponses)
}
