package models

import "time"

type Review struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ProductID    string  `gorm:"size:30;index" json:"product_id"`
	UserID       *string `gorm:"size:40" json:"user_id,omitempty"`
	User         *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ReviewerName string  `json:"reviewer_name"`
	Rating       int     `gorm:"not null" json:"rating"`
	Content      string  `json:"content"`
	TotalLike    int     `gorm:"default:0" json:"total_like"`
	TotalDislike int     `gorm:"default:0" json:"total_dislike"`
	IsPurchased  bool    `gorm:"default:false" json:"is_purchased"`

	Images  []ReviewImage `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"images"`
	Replies []ReviewReply `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"replies"`

	CreatedAt time.Time `json:"created_at"`
}

type ReviewImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ReviewID uint   `gorm:"index" json:"review_id"`
	URL      string `json:"url"`
}

type ReviewReply struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ReviewID uint   `gorm:"index" json:"review_id"`
	UserID   string `gorm:"size:40" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content  string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
}
