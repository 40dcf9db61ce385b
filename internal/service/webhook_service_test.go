package service_test

import (
	"encoding/json"
	"testing"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/model"
	"github.com/hoangtm/examform/internal/repository"
	"github.com/hoangtm/examform/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWebhookService(t *testing.T) (service.WebhookService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := service.NewWebhookService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))
	return svc, db
}

func createExam(t *testing.T, db *gorm.DB, tallyFormID string) model.Exam {
	t.Helper()
	exam := model.Exam{TallyFormID: tallyFormID, Title: "Geography Quiz"}
	require.NoError(t, db.Create(&exam).Error)
	return exam
}

func countSubmissions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Submission{}).Count(&count).Error)
	return count
}

func TestIngestSubmissionMissingData(t *testing.T) {
	svc, db := setupWebhookService(t)
	exam := createExam(t, db, "frm_nodata")

	_, err := svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{EventID: "evt_1"})
	require.ErrorIs(t, err, service.ErrInvalidPayload)

	_, err = svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{Data: json.RawMessage("null")})
	require.ErrorIs(t, err, service.ErrInvalidPayload)

	require.Zero(t, countSubmissions(t, db))
}

func TestIngestSubmissionUnknownExam(t *testing.T) {
	svc, db := setupWebhookService(t)

	payload := dto.TallyWebhookPayload{Data: json.RawMessage(`{"fields":[]}`)}
	_, err := svc.IngestSubmission(4242, payload)
	require.ErrorIs(t, err, service.ErrExamNotFound)
	require.Zero(t, countSubmissions(t, db))
}

func TestIngestSubmissionStudentIDExtraction(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "email typed field wins",
			data: `{"fields":[{"key":"question_1","label":"Name","type":"INPUT_TEXT","value":"Jane"},{"key":"question_2","label":"Contact","type":"EMAIL","value":"jane@example.com"}]}`,
			want: "jane@example.com",
		},
		{
			name: "falls back to email key",
			data: `{"fields":[{"key":"email","label":"Contact","type":"INPUT_TEXT","value":"bob@example.com"}]}`,
			want: "bob@example.com",
		},
		{
			name: "falls back to email label",
			data: `{"fields":[{"key":"question_9","label":"Your Email Address","type":"INPUT_TEXT","value":"eve@example.com"}]}`,
			want: "eve@example.com",
		},
		{
			name: "empty email field falls through to key rule",
			data: `{"fields":[{"key":"question_1","label":"Contact","type":"EMAIL","value":""},{"key":"email","label":"Backup","type":"INPUT_TEXT","value":"backup@example.com"}]}`,
			want: "backup@example.com",
		},
		{
			name: "non-string email value falls through",
			data: `{"fields":[{"key":"question_1","label":"Contact","type":"EMAIL","value":["opt_1"]}]}`,
			want: "anonymous",
		},
		{
			name: "no email anywhere",
			data: `{"fields":[{"key":"question_1","label":"Capital of France","type":"MULTIPLE_CHOICE","value":"Paris"}]}`,
			want: "anonymous",
		},
		{
			name: "no fields at all",
			data: `{"respondentId":"resp_1"}`,
			want: "anonymous",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, db := setupWebhookService(t)
			exam := createExam(t, db, "frm_extract")

			resp, err := svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{Data: json.RawMessage(tc.data)})
			require.NoError(t, err)
			require.Equal(t, tc.want, resp.StudentID)
		})
	}
}

func TestIngestSubmissionStoresRawDataVerbatim(t *testing.T) {
	svc, db := setupWebhookService(t)
	exam := createExam(t, db, "frm_raw")

	data := `{"responseId":"resp_1","fields":[{"key":"question_1","label":"Capital","type":"MULTIPLE_CHOICE","value":"Paris"}],"someUnknownField":{"nested":true}}`
	resp, err := svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{EventID: "evt_raw", Data: json.RawMessage(data)})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, exam.ID, resp.ExamID)
	require.Equal(t, model.SubmissionStatusPending, resp.Status)
	require.Equal(t, "anonymous", resp.StudentID)

	var stored model.Submission
	require.NoError(t, db.First(&stored, resp.ID).Error)
	require.JSONEq(t, data, string(stored.Answers))
	require.Nil(t, stored.Score)
	require.Nil(t, stored.Feedback)
}

func TestIngestSubmissionAllowsDuplicates(t *testing.T) {
	svc, db := setupWebhookService(t)
	exam := createExam(t, db, "frm_dup")

	data := json.RawMessage(`{"fields":[{"key":"email","label":"Email","type":"EMAIL","value":"dup@example.com"}]}`)
	first, err := svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{Data: data})
	require.NoError(t, err)
	second, err := svc.IngestSubmission(exam.ID, dto.TallyWebhookPayload{Data: data})
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.EqualValues(t, 2, countSubmissions(t, db))
}
