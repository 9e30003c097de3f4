package model

import "encoding/json"

// ReadOnlyFields は更新リクエストで受け取っても読み捨てるフィールド。
// GET で返したレコード (ビューを含む) をそのまま PUT できるようにする。
// 同名のフィールドを持つDTOではDTO側が優先される。
type ReadOnlyFields struct {
	CourseCode  json.RawMessage `json:"course_code,omitempty"`
	Category    json.RawMessage `json:"category,omitempty"`
	HintUsed    json.RawMessage `json:"hint_used,omitempty"`
	CreatedAt   json.RawMessage `json:"created_at,omitempty"`
	UpdatedAt   json.RawMessage `json:"updated_at,omitempty"`
	StartedAt   json.RawMessage `json:"started_at,omitempty"`
	CompletedAt json.RawMessage `json:"completed_at,omitempty"`
	Questions   json.RawMessage `json:"questions,omitempty"`
	Progress    json.RawMessage `json:"progress,omitempty"`
	Categories  json.RawMessage `json:"categories,omitempty"`
	CardCount   json.RawMessage `json:"card_count,omitempty"`
}
