package dto

// LoginRequest là body của POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse trả về token và thông tin user
type LoginResponse struct {
	Token string        `json:"token"`
	User  ActorResponse `json:"user"`
}

// CreateUserRequest là body tạo tài khoản mới (chỉ admin)
type CreateUserRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	Role        int     `json:"role"`
	BranchIDs   []int64 `json:"branchIds"`
}

// ActorResponse là thông tin người thao tác rút gọn
type ActorResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}
