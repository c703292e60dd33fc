package models

import "time"

// Project status values. Transitions run pending -> approved | rejected, but
// nothing guards against re-approval; the generic update can set any status.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Project is a student's content submission and its current approval state.
type Project struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	StudentName     string      `json:"student_name" gorm:"type:text;not null;index"`
	Title           string      `json:"title" gorm:"type:text;not null"`
	Prompt          string      `json:"prompt" gorm:"type:text;not null"`
	Evaluation      *Evaluation `json:"evaluation" gorm:"type:text;serializer:json"`
	HTMLContent     *string     `json:"html_content" gorm:"type:text"`
	Status          string      `json:"status" gorm:"type:text;not null;default:pending;index"`
	RejectionReason *string     `json:"rejection_reason" gorm:"type:text"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
