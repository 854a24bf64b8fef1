package services

import (
	"github.com/aaryaa4/civic-connectt/entity"
	"github.com/aaryaa4/civic-connectt/repository"
)

type FeedbackService struct {
	repo       *repository.FeedbackRepository
	reportRepo *repository.ReportRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository, reportRepo *repository.ReportRepository) *FeedbackService {
	return &FeedbackService{repo: repo, reportRepo: reportRepo}
}

// Submit records the owner's one-time rating of a resolved report. An unknown
// report and someone else's report fail the same way, so the endpoint does
// not leak which report ids exist.
func (s *FeedbackService) Submit(user *entity.User, reportID uint, rating int, comment string) (*entity.Feedback, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil || report.OwnerID != user.ID {
		return nil, ErrNotReportOwner
	}
	if report.Status != entity.StatusResolved {
		return nil, ErrReportNotResolved
	}

	exists, err := s.repo.ExistsForReport(reportID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrFeedbackExists
	}

	fb := &entity.Feedback{
		Rating:   rating,
		Comment:  comment,
		ReportID: reportID,
		OwnerID:  user.ID,
	}
	if err := s.repo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}
