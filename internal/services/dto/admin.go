package dto

type AdminUserFilter struct {
	Role      string `form:"role" validate:"omitempty,oneof=freelancer employer support manager admin"`
	IsBlocked *bool  `form:"is_blocked"`
	Search    string `form:"search"`
	Page      int    `form:"-"`
	PageSize  int    `form:"-"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type BlockUserRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type BulkUserIDsRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,max=100"`
}

type BulkBlockRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,max=100"`
	Reason  string   `json:"reason" validate:"required,min=3"`
}

type BulkRoleRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,max=100"`
	Role    string   `json:"role" validate:"required"`
}

type BulkResult struct {
	Affected int `json:"affected"`
}

type AuditLogFilter struct {
	UserID     string `form:"user_id"`
	EntityType string `form:"entity_type"`
	Action     string `form:"action"`
	Page       int    `form:"-"`
	PageSize   int    `form:"-"`
}
