package service

import (
	"encoding/json"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// FormRenderService turns a stored schema snapshot into the ordered question
// list shown to teachers. Rendering never fails: a snapshot the renderer
// cannot make sense of yields an empty list, and absent nested fields fall
// back to placeholder text.
type FormRenderService interface {
	RenderQuestions(snapshot datatypes.JSON) []dto.DisplayQuestionDTO
}

type formRenderService struct{}

func NewFormRenderService() FormRenderService {
	return &formRenderService{}
}

func (s *formRenderService) RenderQuestions(snapshot datatypes.JSON) []dto.DisplayQuestionDTO {
	if len(snapshot) == 0 {
		return nil
	}

	var doc dto.FormDocument
	if err := json.Unmarshal(snapshot, &doc); err != nil {
		log.Warn().Err(err).Msg("Schema snapshot is not a parseable form document")
		return nil
	}

	// First pass: the group uuids that represent questions, in the order
	// they first appear. Blocks of any other group type are dropped.
	var order []string
	groups := make(map[string][]dto.FormBlock)
	for _, block := range doc.Blocks {
		if block.GroupType != dto.GroupTypeQuestion && block.GroupType != dto.GroupTypeCheckboxes {
			continue
		}
		if _, seen := groups[block.GroupUUID]; !seen {
			groups[block.GroupUUID] = nil
			order = append(order, block.GroupUUID)
		}
	}

	// Second pass: bucket every block belonging to a retained group.
	for _, block := range doc.Blocks {
		if _, ok := groups[block.GroupUUID]; ok {
			groups[block.GroupUUID] = append(groups[block.GroupUUID], block)
		}
	}

	questions := make([]dto.DisplayQuestionDTO, 0, len(order))
	for i, groupUUID := range order {
		blocks := groups[groupUUID]

		text := "Question"
		for _, block := range blocks {
			if block.Type == dto.BlockTypeTitle {
				if t := firstSegmentText(block.Payload.SafeHTMLSchema); t != "" {
					text = t
				}
				break
			}
		}

		var options []string
		for _, block := range blocks {
			if block.Type == dto.BlockTypeCheckbox || block.Type == dto.BlockTypeRadioButton {
				options = append(options, optionLabel(block.Payload))
			}
		}

		questions = append(questions, dto.DisplayQuestionDTO{
			Index:     i + 1,
			Text:      text,
			GroupType: blocks[0].GroupType,
			Options:   options,
		})
	}
	return questions
}

// firstSegmentText extracts the plain text of the first rich-text segment.
func firstSegmentText(schema [][]interface{}) string {
	if len(schema) == 0 || len(schema[0]) == 0 {
		return ""
	}
	if text, ok := schema[0][0].(string); ok {
		return text
	}
	return ""
}

func optionLabel(payload dto.BlockPayload) string {
	if payload.Text != "" {
		return payload.Text
	}
	if text := firstSegmentText(payload.SafeHTMLSchema); text != "" {
		return text
	}
	if payload.Label != "" {
		return payload.Label
	}
	return "Option"
}
