package service

import (
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogAction(actorID int, action string, roomAdmissionID int, oldValue, newValue interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogAction records one engine action against an admission. Audit failures
// are reported to the caller but must never abort the admission workflow
// that produced them.
func (s *auditService) LogAction(actorID int, action string, roomAdmissionID int, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":            "room_admission",
		"room_admission_id": roomAdmissionID,
		"old_value":         oldValue,
		"new_value":         newValue,
	}

	var actor *int
	if actorID > 0 {
		actor = &actorID
	}

	auditLog := &entity.AuditLog{
		ActorID:  actor,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
