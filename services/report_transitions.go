package services

import (
	"errors"

	"github.com/aaryaa4/civic-connectt/entity"

	"gorm.io/gorm"
)

// The status machine has exactly one edge: pending -> resolved, admin only.

// UpdateStatus applies an admin's status change. The write is guarded on the
// current status, so a report already resolved (possibly by a concurrent
// request) rejects the transition instead of silently re-applying it.
func (s *ReportService) UpdateStatus(actorRole string, reportID uint, newStatus string) error {
	if actorRole != entity.RoleAdmin {
		return ErrAdminOnly
	}

	if _, err := s.repo.FindByID(reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}

	if newStatus != entity.StatusPending && newStatus != entity.StatusResolved {
		return ErrInvalidStatus
	}
	if newStatus != entity.StatusResolved {
		return ErrInvalidTransition
	}

	affected, err := s.repo.UpdateStatusGuard(reportID, entity.StatusPending, entity.StatusResolved)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
