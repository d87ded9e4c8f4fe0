package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 用户模型
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;comment:用户标识" json:"id"`
	Email       string    `gorm:"not null;uniqueIndex;comment:邮箱" json:"email"`
	Name        string    `gorm:"not null;comment:昵称" json:"name"`
	DisplayName string    `gorm:"not null;uniqueIndex;comment:用户名（小写，仅字母数字下划线）" json:"display_name"`
	Password    string    `gorm:"not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate 未指定 ID 时生成 UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
