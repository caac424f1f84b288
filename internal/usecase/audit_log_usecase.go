package usecase

import (
	"context"

	"hospital-ipd-engine/internal/converter"
	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 100

type AuditLogUsecase interface {
	GetRecentAuditLogs(ctx context.Context, action string, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetRecentAuditLogs(ctx context.Context, action string, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > defaultAuditLogLimit {
		limit = defaultAuditLogLimit
	}

	db := u.db.WithContext(ctx)
	var logs []entity.AuditLog
	var err error
	if action != "" {
		logs, err = u.auditLogRepo.FindByAction(db, action, limit)
	} else {
		logs, err = u.auditLogRepo.FindRecent(db, limit)
	}
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	entries := converter.AuditLogsToResponses(logs)
	return &dto.AuditLogListResponse{
		Logs:  entries,
		Total: len(entries),
	}, nil
}
