package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:40" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `json:"-"`
	RandomKey    string `json:"-"` // per-user salt mixed into the password hash
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Avatar       string `json:"avatar"`
	RoleID       string `gorm:"size:20;default:'user'" json:"role_id"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Address   Address    `gorm:"embedded" json:"address"`
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Street   string `json:"street"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
}
