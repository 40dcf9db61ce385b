package repository

import (
	"github.com/hoangtm/examform/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithSubmissions(id uint) (*model.Exam, error)
	FindByTallyFormID(tallyFormID string) (*model.Exam, error)
	FindAllWithSubmissionCount() ([]struct {
		model.Exam
		SubmissionCount int
	}, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindByIDWithSubmissions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Submissions", func(db *gorm.DB) *gorm.DB {
		return db.Order("submissions.submitted_at DESC")
	}).First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindByTallyFormID(tallyFormID string) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Where("tally_form_id = ?", tallyFormID).First(&exam).Error
	return &exam, err
}

func (r *examRepository) FindAllWithSubmissionCount() ([]struct {
	model.Exam
	SubmissionCount int
}, error) {
	var results []struct {
		model.Exam
		SubmissionCount int
	}
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM submissions WHERE submissions.exam_id = exams.id AND submissions.deleted_at IS NULL) as submission_count").
		Where("exams.deleted_at IS NULL").
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}
