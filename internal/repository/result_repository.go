package repository

import (
	"errors"

	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	ExistsForExamAndStudent(examID uint, studentID string) (bool, error)
	FindByExamAndStudent(examID uint, studentID string) (*model.ExamResult, error)
	FindAllByExamOrdered(examID uint) ([]model.ExamResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) ExistsForExamAndStudent(examID uint, studentID string) (bool, error) {
	var result model.ExamResult
	err := r.db.Where("exam_id = ? AND student_id = ?", examID, studentID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *resultRepository) FindByExamAndStudent(examID uint, studentID string) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.db.Preload("Student").
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAllByExamOrdered returns an exam's results ranked by score, ties
// broken by insertion order.
func (r *resultRepository) FindAllByExamOrdered(examID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Preload("Student").
		Where("exam_id = ?", examID).
		Order("score DESC, id ASC").
		Find(&results).Error
	return results, err
}
