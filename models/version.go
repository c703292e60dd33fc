package models

import "time"

// Version is an immutable audit snapshot of a project's prompt, content,
// evaluation and status at a point in time. Rows are append-only; no update
// path exists anywhere in the codebase.
type Version struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	ProjectID   uint        `json:"project_id" gorm:"not null;index"`
	Prompt      string      `json:"prompt" gorm:"type:text;not null"`
	HTMLContent *string     `json:"html_content" gorm:"type:text"`
	Evaluation  *Evaluation `json:"evaluation" gorm:"type:text;serializer:json"`
	Status      string      `json:"status" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at"`
}
