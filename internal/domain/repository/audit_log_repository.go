package repository

import (
	"hospital-ipd-engine/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error)
	FindByAction(db *gorm.DB, action string, limit int) ([]entity.AuditLog, error)
}
