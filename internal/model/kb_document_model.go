package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KbDocument struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileName  string         `gorm:"type:varchar(512);not null;index"`
	Status    string         `gorm:"type:varchar(16);not null;default:'PENDING'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (KbDocument) TableName() string {
	return "kb_documents"
}
