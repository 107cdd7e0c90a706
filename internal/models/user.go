package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	DisplayName  string   `json:"display_name"`
	Role         UserRole `gorm:"type:varchar(20);not null;index" json:"role"`

	// Модерация аккаунта
	IsBlocked     bool   `gorm:"default:false;index" json:"is_blocked"`
	BlockedReason string `json:"blocked_reason,omitempty"`

	// Счетчики неудачных входов
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
