package repository

import (
	"github.com/aaryaa4/civic-connectt/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(fb *entity.Feedback) error {
	return r.db.Create(fb).Error
}

func (r *FeedbackRepository) FindByReport(reportID uint) (*entity.Feedback, error) {
	var fb entity.Feedback
	if err := r.db.Where("report_id = ?", reportID).First(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *FeedbackRepository) ExistsForReport(reportID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Feedback{}).Where("report_id = ?", reportID).Count(&count).Error
	return count > 0, err
}
