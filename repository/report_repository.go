package repository

import (
	"github.com/aaryaa4/civic-connectt/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Listings are always newest first.

func (r *ReportRepository) FindAll(out *[]entity.Report) error {
	return r.db.Order("timestamp DESC").Find(out).Error
}

func (r *ReportRepository) FindAllByOwner(ownerID uint, out *[]entity.Report) error {
	return r.db.Where("owner_id = ?", ownerID).Order("timestamp DESC").Find(out).Error
}

func (r *ReportRepository) FindAllByCommunity(communityID uint, out *[]entity.Report) error {
	return r.db.Where("community_id = ?", communityID).Order("timestamp DESC").Find(out).Error
}

// UpdateStatusGuard flips the status only when the row is still in the
// expected state. The caller checks the affected-row count to detect a
// conflicting or illegal transition.
func (r *ReportRepository) UpdateStatusGuard(id uint, from, to string) (int64, error) {
	res := r.db.Model(&entity.Report{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
