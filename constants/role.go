package constants

// Role định nghĩa vai trò người dùng trong hệ thống.
// Dùng enum đóng thay cho so sánh chuỗi để không bỏ sót case khi phân quyền.
type Role int

const (
	RoleGuest Role = iota
	RoleStaff
	RoleAdmin
)

// Valid kiểm tra role có nằm trong tập vai trò được định nghĩa không
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

// IsStaff kiểm tra role có quyền thao tác nghiệp vụ lễ tân trở lên không
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}
