package dto

import "time"

// --- Teacher-side drafts ---

// QuestionDraftDTO is one question inside an exam draft. CorrectOption is
// the zero-based index into Options.
type QuestionDraftDTO struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectOption int      `json:"correct_option" binding:"min=0"`
	Points        int      `json:"points" binding:"required,min=1"`
}

// ExamDraftDTO is the teacher's create/update payload. Questions are
// stored in the order they appear here.
type ExamDraftDTO struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description,omitempty"`
	DurationMinutes int                `json:"duration_minutes" binding:"required,gt=0"`
	ResultsVisible  bool               `json:"results_visible"`
	Questions       []QuestionDraftDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuestionDetailDTO includes the answer key; teacher-facing only.
type QuestionDetailDTO struct {
	ID            uint     `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Points        int      `json:"points"`
	OrderInExam   int      `json:"order_in_exam"`
}

type ExamDetailDTO struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	DurationMinutes int                 `json:"duration_minutes"`
	ResultsVisible  bool                `json:"results_visible"`
	Active          bool                `json:"active"`
	Questions       []QuestionDetailDTO `json:"questions,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// --- Student-facing payloads ---

// ExamSummaryDTO is used for listing available exams: no questions, no key.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// QuestionPayloadDTO deliberately has no correct-option field so the key
// cannot leak to the exam-taking client.
type QuestionPayloadDTO struct {
	ID          uint     `json:"id"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Points      int      `json:"points"`
	OrderInExam int      `json:"order_in_exam"`
}

// ExamPayloadDTO is returned when an attempt opens.
type ExamPayloadDTO struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	DurationMinutes int                  `json:"duration_minutes"`
	Questions       []QuestionPayloadDTO `json:"questions"`
	SessionHandle   string               `json:"session_handle"`
	StartedAt       time.Time            `json:"started_at"`
	Deadline        time.Time            `json:"deadline"`
}
