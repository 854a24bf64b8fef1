package services

import (
	"github.com/aaryaa4/civic-connectt/entity"
	"github.com/aaryaa4/civic-connectt/repository"
)

type ReportService struct {
	repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

var validCategories = map[string]bool{
	entity.CategoryWaste:   true,
	entity.CategoryTraffic: true,
	entity.CategoryInfra:   true,
	entity.CategoryOther:   true,
}

// CreateReport files a new issue for the owner. The community reference is
// copied from the owner at this point and never re-derived.
func (s *ReportService) CreateReport(owner *entity.User, caption, imageURL string, latitude, longitude float64, category string, isEmergency bool) (*entity.Report, error) {
	if !validCategories[category] {
		return nil, ErrInvalidCategory
	}

	report := &entity.Report{
		Caption:     caption,
		ImageURL:    imageURL,
		Latitude:    latitude,
		Longitude:   longitude,
		Category:    category,
		Status:      entity.StatusPending,
		IsEmergency: isEmergency,
		OwnerID:     owner.ID,
		CommunityID: owner.CommunityID,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListFor scopes the listing by role: admins see every report (optionally a
// single community), residents only their own. Newest first either way.
func (s *ReportService) ListFor(user *entity.User, role string, communityID uint) ([]entity.Report, error) {
	var reports []entity.Report
	if role == entity.RoleAdmin {
		if communityID > 0 {
			if err := s.repo.FindAllByCommunity(communityID, &reports); err != nil {
				return nil, err
			}
			return reports, nil
		}
		if err := s.repo.FindAll(&reports); err != nil {
			return nil, err
		}
		return reports, nil
	}

	if err := s.repo.FindAllByOwner(user.ID, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) FindByID(id uint) (*entity.Report, error) {
	return s.repo.FindByID(id)
}
