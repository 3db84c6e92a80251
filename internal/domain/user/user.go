package user

import (
	"time"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password     string    `gorm:"not null;column:password" json:"-"`
	DisplayName  string    `gorm:"not null;column:display_name" json:"displayName"`
	Email        string    `gorm:"column:email" json:"email"`
	JoinDate     time.Time `gorm:"not null;column:join_date" json:"joinDate"`
	ProfileImage *string   `gorm:"column:profile_image" json:"profileImage"`
}

func (User) TableName() string { return "user" }
