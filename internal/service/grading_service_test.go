package service_test

import (
	"testing"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/model"
	"github.com/hoangtm/examform/internal/repository"
	"github.com/hoangtm/examform/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupGradingService(t *testing.T) (service.GradingService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return service.NewGradingService(repository.NewSubmissionRepository(db)), db
}

func createPendingSubmission(t *testing.T, db *gorm.DB) model.Submission {
	t.Helper()
	exam := createExam(t, db, "frm_grade")
	submission := model.Submission{
		ExamID:    exam.ID,
		StudentID: "jane@example.com",
		Answers:   datatypes.JSON(`{"fields":[]}`),
		Status:    model.SubmissionStatusPending,
	}
	require.NoError(t, db.Create(&submission).Error)
	return submission
}

func TestGradeSubmission(t *testing.T) {
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	feedback := "Good"
	resp, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: float64(85), Feedback: &feedback})
	require.NoError(t, err)
	require.Equal(t, model.SubmissionStatusGraded, resp.Status)
	require.NotNil(t, resp.Score)
	require.Equal(t, 85.0, *resp.Score)
	require.NotNil(t, resp.Feedback)
	require.Equal(t, "Good", *resp.Feedback)

	var stored model.Submission
	require.NoError(t, db.First(&stored, submission.ID).Error)
	require.Equal(t, model.SubmissionStatusGraded, stored.Status)
	require.Equal(t, 85.0, *stored.Score)
}

func TestGradeSubmissionNotFound(t *testing.T) {
	svc, _ := setupGradingService(t)

	_, err := svc.GradeSubmission(9999, dto.GradeSubmissionDTO{Score: float64(50)})
	require.ErrorIs(t, err, service.ErrSubmissionNotFound)
}

func TestGradeSubmissionCoercesStringScore(t *testing.T) {
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	resp, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: "92.5"})
	require.NoError(t, err)
	require.Equal(t, 92.5, *resp.Score)
}

func TestGradeSubmissionAcceptsOutOfRangeScore(t *testing.T) {
	// No range validation: negative and out-of-scale values pass through.
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	resp, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: float64(-10)})
	require.NoError(t, err)
	require.Equal(t, -10.0, *resp.Score)
	require.Equal(t, model.SubmissionStatusGraded, resp.Status)
}

func TestGradeSubmissionRejectsNonNumericScore(t *testing.T) {
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	_, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: "excellent"})
	require.ErrorIs(t, err, service.ErrInvalidScore)

	_, err = svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: map[string]interface{}{"value": 1}})
	require.ErrorIs(t, err, service.ErrInvalidScore)

	var stored model.Submission
	require.NoError(t, db.First(&stored, submission.ID).Error)
	require.Equal(t, model.SubmissionStatusPending, stored.Status)
}

func TestGradeSubmissionWithoutScoreStillMarksGraded(t *testing.T) {
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	resp, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{})
	require.NoError(t, err)
	require.Equal(t, model.SubmissionStatusGraded, resp.Status)
	require.Nil(t, resp.Score)
}

func TestGradeSubmissionOverwritesPreviousGrade(t *testing.T) {
	svc, db := setupGradingService(t)
	submission := createPendingSubmission(t, db)

	first := "First pass"
	_, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: float64(60), Feedback: &first})
	require.NoError(t, err)

	second := "Revised"
	resp, err := svc.GradeSubmission(submission.ID, dto.GradeSubmissionDTO{Score: float64(75), Feedback: &second})
	require.NoError(t, err)
	require.Equal(t, 75.0, *resp.Score)
	require.Equal(t, "Revised", *resp.Feedback)

	var stored model.Submission
	require.NoError(t, db.First(&stored, submission.ID).Error)
	require.Equal(t, 75.0, *stored.Score)
	require.Equal(t, "Revised", *stored.Feedback)
}
