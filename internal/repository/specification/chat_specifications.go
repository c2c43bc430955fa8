package specification

import "gorm.io/gorm"

// BySessionId filters chat messages by their conversation session
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// ByRole filters chat messages by speaker role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// BySource filters kb rows by their originating document
type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

// ByFileName filters kb documents by stored file name
type ByFileName struct {
	FileName string
}

func (s ByFileName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_name = ?", s.FileName)
}
