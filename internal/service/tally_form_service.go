package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hoangtm/examform/config"
	"github.com/hoangtm/examform/internal/dto"
	"github.com/rs/zerolog/log"
)

// TallyFormService fetches a form's structural definition from the provider.
// Without an API key it serves a fixed mock document, so exams can be
// created locally without a Tally account.
type TallyFormService interface {
	GetForm(ctx context.Context, formID string) (json.RawMessage, error)
}

type tallyFormService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTallyFormService(cfg *config.Config) TallyFormService {
	if cfg.Tally.ApiKey == "" {
		log.Warn().Msg("TALLY_API_KEY is not set. TallyFormService will serve mock form documents.")
	}
	return &tallyFormService{
		apiKey:  cfg.Tally.ApiKey,
		baseURL: cfg.Tally.BaseURL,
		client:  http.DefaultClient,
	}
}

// GetForm returns the provider's form document verbatim; callers store it
// as the exam's schema snapshot. One fetch per call, no retry, no caching.
func (s *tallyFormService) GetForm(ctx context.Context, formID string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return json.Marshal(mockFormDocument(formID))
	}

	url := fmt.Sprintf("%s/forms/%s", s.baseURL, formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("Tally form request failed")
		return nil, fmt.Errorf("%w: %v", ErrFormFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Str("formID", formID).Str("status", resp.Status).Msg("Tally returned non-success status")
		return nil, fmt.Errorf("%w: %s", ErrFormFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormFetch, err)
	}
	return body, nil
}

// mockFormDocument mirrors the block layout Tally's /forms endpoint returns:
// two multiple-choice questions and an email input.
func mockFormDocument(formID string) dto.FormDocument {
	return dto.FormDocument{
		ID:   formID,
		Name: "Mock Exam",
		Blocks: []dto.FormBlock{
			{
				UUID: "blk_q1_title", Type: dto.BlockTypeTitle,
				GroupUUID: "grp_q1", GroupType: dto.GroupTypeQuestion,
				Payload: dto.BlockPayload{SafeHTMLSchema: [][]interface{}{{"What is the capital of France?"}}},
			},
			{UUID: "blk_q1_opt1", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q1", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "Paris"}},
			{UUID: "blk_q1_opt2", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q1", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "London"}},
			{UUID: "blk_q1_opt3", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q1", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "Berlin"}},
			{
				UUID: "blk_q2_title", Type: dto.BlockTypeTitle,
				GroupUUID: "grp_q2", GroupType: dto.GroupTypeQuestion,
				Payload: dto.BlockPayload{SafeHTMLSchema: [][]interface{}{{"What is 2 + 2?"}}},
			},
			{UUID: "blk_q2_opt1", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q2", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "3"}},
			{UUID: "blk_q2_opt2", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q2", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "4"}},
			{UUID: "blk_q2_opt3", Type: dto.BlockTypeRadioButton, GroupUUID: "grp_q2", GroupType: dto.GroupTypeQuestion, Payload: dto.BlockPayload{Text: "5"}},
			{
				UUID: "blk_email", Type: "INPUT_EMAIL",
				GroupUUID: "grp_email", GroupType: "INPUT_EMAIL",
				Payload: dto.BlockPayload{Label: "Email"},
			},
		},
	}
}
