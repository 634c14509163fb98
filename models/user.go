package models

import (
	"time"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"unique"`
	PhoneNumber string    `json:"phoneNumber"`
	Username    string    `json:"username" gorm:"unique"`
	Password    string    `json:"-"`
	Role        int       `json:"role" gorm:"default:0"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
