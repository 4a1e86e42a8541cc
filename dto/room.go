package dto

// CreateRoomRequest là body tạo phòng mới
type CreateRoomRequest struct {
	BranchID   uint   `json:"branchId"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
}

// UpdateRoomStatusRequest đổi trạng thái tĩnh của phòng (available/maintenance)
type UpdateRoomStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// CreateRoomTypeRequest là body tạo loại phòng
type CreateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Description string  `json:"description"`
}
