package model

import (
	"time"
)

type Exam struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description,omitempty"`
	DurationMinutes int        `json:"duration_minutes" gorm:"not null"`
	ResultsVisible  bool       `json:"results_visible" gorm:"not null;default:false"`
	Active          bool       `json:"active" gorm:"not null;default:true"`
	Questions       []Question `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
