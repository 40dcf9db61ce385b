package dto

// Block and group type tags used by the Tally form document. Anything not
// listed here is ignored by the renderer.
const (
	BlockTypeTitle       = "TITLE"
	BlockTypeRadioButton = "RADIO_BUTTON"
	BlockTypeCheckbox    = "CHECKBOX"

	GroupTypeQuestion   = "QUESTION"
	GroupTypeCheckboxes = "CHECKBOXES"

	FieldTypeEmail = "EMAIL"
)

// FormDocument is the provider's form definition: a flat, ordered list of
// presentation blocks. Blocks sharing a groupUuid form one logical question.
type FormDocument struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Blocks []FormBlock `json:"blocks"`
}

type FormBlock struct {
	UUID      string       `json:"uuid"`
	Type      string       `json:"type"`
	GroupUUID string       `json:"groupUuid"`
	GroupType string       `json:"groupType"`
	Payload   BlockPayload `json:"payload"`
}

// BlockPayload is loosely typed on the provider side; every access must
// tolerate absent fields. SafeHTMLSchema is a list of rich-text segments
// whose first element is the segment's plain text.
type BlockPayload struct {
	Text           string          `json:"text,omitempty"`
	Label          string          `json:"label,omitempty"`
	SafeHTMLSchema [][]interface{} `json:"safeHTMLSchema,omitempty"`
}
