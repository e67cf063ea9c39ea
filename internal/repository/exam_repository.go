package repository

import (
	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllActiveWithQuestionCount() ([]struct {
		model.Exam
		QuestionCount int
	}, error)
	SetActive(id uint, active bool) (int64, error)
	SetResultsVisible(id uint, visible bool) (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_exam ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.option_order ASC")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllActiveWithQuestionCount() ([]struct {
	model.Exam
	QuestionCount int
}, error) {
	var results []struct {
		model.Exam
		QuestionCount int
	}
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id) as question_count").
		Where("exams.active = ?", true).
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.db.Model(&model.Exam{}).Where("id = ?", id).Update("active", active)
	return res.RowsAffected, res.Error
}

func (r *examRepository) SetResultsVisible(id uint, visible bool) (int64, error) {
	res := r.db.Model(&model.Exam{}).Where("id = ?", id).Update("results_visible", visible)
	return res.RowsAffected, res.Error
}
