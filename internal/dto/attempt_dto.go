package dto

import "time"

type StartAttemptDTO struct {
	StudentID string `json:"student_id" binding:"required"`
}

// AnswerDTO carries one selection; -1 marks an unanswered question.
type AnswerDTO struct {
	QuestionID     uint `json:"question_id" binding:"required"`
	SelectedOption int  `json:"selected_option" binding:"min=-1"`
}

type SubmitAttemptDTO struct {
	StudentID string      `json:"student_id" binding:"required"`
	Answers   []AnswerDTO `json:"answers" binding:"required,dive"`
}

// SubmissionReceiptDTO intentionally omits the score; results are served
// through the visibility-gated result endpoint.
type SubmissionReceiptDTO struct {
	Submitted   bool      `json:"submitted"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ExamResultDTO struct {
	ID             uint      `json:"id"`
	ExamID         uint      `json:"exam_id"`
	StudentID      string    `json:"student_id"`
	StudentName    string    `json:"student_name,omitempty"`
	Score          int       `json:"score"`
	TotalPossible  int       `json:"total_possible"`
	Percentage     float64   `json:"percentage"`
	SubmissionTime time.Time `json:"submission_time"`
}
