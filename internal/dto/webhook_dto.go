package dto

import "encoding/json"

// TallyWebhookPayload is the submission notification Tally posts when a
// respondent completes a form. Data is kept raw so it can be stored
// verbatim; only Fields is inspected, extra provider fields are ignored.
type TallyWebhookPayload struct {
	EventID   string          `json:"eventId"`
	CreatedAt string          `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
}

// HasData reports whether the payload carries a data object at all.
func (p TallyWebhookPayload) HasData() bool {
	return len(p.Data) > 0 && string(p.Data) != "null"
}

// WebhookData is the portion of the data object this system inspects.
type WebhookData struct {
	Fields []WebhookField `json:"fields"`
}

// WebhookField is one answered field. Value may be a string, a list of
// option ids, or absent depending on the field type.
type WebhookField struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// StringValue returns the field value when it is a non-empty string.
func (f WebhookField) StringValue() string {
	if s, ok := f.Value.(string); ok {
		return s
	}
	return ""
}

// WebhookAckDTO acknowledges a stored submission back to the provider.
type WebhookAckDTO struct {
	Success      bool `json:"success"`
	SubmissionID uint `json:"submission_id"`
}
