package repository

import (
	"github.com/hoangtm/examform/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	Save(submission *model.Submission) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.First(&submission, id).Error
	return &submission, err
}

func (r *submissionRepository) Save(submission *model.Submission) error {
	// Save updates all fields, including Score and Feedback.
	return r.db.Save(submission).Error
}
