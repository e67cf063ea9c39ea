package model

import (
	"time"
)

// Question belongs to exactly one exam. CorrectOption is the zero-based
// position of the correct entry in Options and must never be serialized
// into student-facing payloads.
type Question struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	ExamID        uint             `json:"exam_id" gorm:"not null;index"`
	Text          string           `json:"text" gorm:"type:text;not null"`
	CorrectOption int              `json:"correct_option" gorm:"not null"`
	Points        int              `json:"points" gorm:"not null"`
	OrderInExam   int              `json:"order_in_exam" gorm:"not null"`
	Options       []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type QuestionOption struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	QuestionID  uint   `json:"question_id" gorm:"not null;index"`
	Text        string `json:"text" gorm:"type:text;not null"`
	OptionOrder int    `json:"option_order" gorm:"not null"`
}
