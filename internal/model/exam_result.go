package model

import (
	"time"
)

// ExamResult is written exactly once per (exam, student) pair and is
// immutable afterwards.
type ExamResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ExamID         uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_student"`
	StudentID      string    `json:"student_id" gorm:"not null;uniqueIndex:idx_exam_student"`
	Student        Student   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Score          int       `json:"score" gorm:"not null"`
	TotalPossible  int       `json:"total_possible" gorm:"not null"`
	SubmissionTime time.Time `json:"submission_time" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

type StudentAnswer struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	ExamID         uint   `json:"exam_id" gorm:"not null;index"`
	StudentID      string `json:"student_id" gorm:"not null;index"`
	QuestionID     uint   `json:"question_id" gorm:"not null"`
	SelectedOption int    `json:"selected_option" gorm:"not null"` // -1 means unanswered
	CreatedAt      time.Time `json:"created_at"`
}
