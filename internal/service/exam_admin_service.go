package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/apperr"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/grading"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamAdminService covers the teacher operations: authoring, visibility,
// soft deletion and result listing.
type ExamAdminService interface {
	CreateExam(draft dto.ExamDraftDTO) (*dto.ExamDetailDTO, error)
	UpdateExam(examID uint, draft dto.ExamDraftDTO) (*dto.ExamDetailDTO, error)
	DeleteExam(examID uint) error
	SetResultVisibility(examID uint, visible bool) error
	ListResults(examID uint) ([]dto.ExamResultDTO, error)
}

type examAdminService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	audit      AuditLog
	db         *gorm.DB
}

func NewExamAdminService(
	examRepo repository.ExamRepository,
	resultRepo repository.ResultRepository,
	audit AuditLog,
	db *gorm.DB,
) ExamAdminService {
	return &examAdminService{examRepo: examRepo, resultRepo: resultRepo, audit: audit, db: db}
}

func validateDraft(draft dto.ExamDraftDTO) error {
	if draft.Title == "" {
		return fmt.Errorf("%w: title must not be empty", apperr.ErrValidationFailed)
	}
	if draft.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", apperr.ErrValidationFailed, draft.DurationMinutes)
	}
	if len(draft.Questions) == 0 {
		return fmt.Errorf("%w: an exam needs at least one question", apperr.ErrValidationFailed)
	}
	for i, q := range draft.Questions {
		if q.Text == "" {
			return fmt.Errorf("%w: question %d has empty text", apperr.ErrValidationFailed, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d needs at least 2 options, got %d", apperr.ErrValidationFailed, i+1, len(q.Options))
		}
		for j, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("%w: question %d option %d is empty", apperr.ErrValidationFailed, i+1, j+1)
			}
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return fmt.Errorf("%w: question %d correct option %d out of range [0,%d)", apperr.ErrValidationFailed, i+1, q.CorrectOption, len(q.Options))
		}
		if q.Points < 1 {
			return fmt.Errorf("%w: question %d must be worth at least 1 point", apperr.ErrValidationFailed, i+1)
		}
	}
	return nil
}

// insertQuestions writes a draft's questions and options under examID,
// preserving draft order. Must run inside a transaction.
func insertQuestions(tx *gorm.DB, examID uint, questions []dto.QuestionDraftDTO) error {
	for i, qDraft := range questions {
		question := model.Question{
			ExamID:        examID,
			Text:          qDraft.Text,
			CorrectOption: qDraft.CorrectOption,
			Points:        qDraft.Points,
			OrderInExam:   i + 1,
		}
		if err := tx.Create(&question).Error; err != nil {
			return fmt.Errorf("inserting question %d: %w", i+1, err)
		}

		options := make([]model.QuestionOption, len(qDraft.Options))
		for j, text := range qDraft.Options {
			options[j] = model.QuestionOption{
				QuestionID:  question.ID,
				Text:        text,
				OptionOrder: j,
			}
		}
		if err := tx.Create(&options).Error; err != nil {
			return fmt.Errorf("inserting options for question %d: %w", i+1, err)
		}
	}
	return nil
}

// CreateExam persists the draft as one transaction: the exam row, every
// question, and every option land together or not at all.
func (s *examAdminService) CreateExam(draft dto.ExamDraftDTO) (*dto.ExamDetailDTO, error) {
	if err := validateDraft(draft); err != nil {
		log.Warn().Err(err).Str("title", draft.Title).Msg("CreateExam: draft rejected")
		return nil, err
	}

	exam := model.Exam{
		Title:           draft.Title,
		Description:     draft.Description,
		DurationMinutes: draft.DurationMinutes,
		ResultsVisible:  draft.ResultsVisible,
		Active:          true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&exam).Error; err != nil {
			return fmt.Errorf("inserting exam: %w", err)
		}
		return insertQuestions(tx, exam.ID, draft.Questions)
	})
	if err != nil {
		log.Error().Err(err).Str("title", draft.Title).Msg("CreateExam: transaction rolled back")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	s.audit.Record("Created new exam: %s", exam.Title)
	return s.examDetail(exam.ID)
}

// UpdateExam is a full replace: exam fields are updated and the question
// set is rebuilt from the draft inside one transaction. Accumulated
// results for the exam are untouched.
func (s *examAdminService) UpdateExam(examID uint, draft dto.ExamDraftDTO) (*dto.ExamDetailDTO, error) {
	if err := validateDraft(draft); err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("UpdateExam: draft rejected")
		return nil, err
	}

	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":            draft.Title,
			"description":      draft.Description,
			"duration_minutes": draft.DurationMinutes,
			"results_visible":  draft.ResultsVisible,
		}
		if err := tx.Model(&model.Exam{}).Where("id = ?", examID).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating exam row: %w", err)
		}

		questionIDs := tx.Model(&model.Question{}).Select("id").Where("exam_id = ?", examID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
			return fmt.Errorf("clearing options: %w", err)
		}
		if err := tx.Where("exam_id = ?", examID).Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("clearing questions: %w", err)
		}
		return insertQuestions(tx, examID, draft.Questions)
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("UpdateExam: transaction rolled back")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	s.audit.Record("Updated exam: %s", draft.Title)
	return s.examDetail(examID)
}

// DeleteExam flips the active flag; history stays queryable.
func (s *examAdminService) DeleteExam(examID uint) error {
	rows, err := s.examRepo.SetActive(examID, false)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("DeleteExam: update failed")
		return fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return apperr.ErrExamNotFound
	}
	s.audit.Record("Deleted exam with ID: %d", examID)
	return nil
}

func (s *examAdminService) SetResultVisibility(examID uint, visible bool) error {
	rows, err := s.examRepo.SetResultsVisible(examID, visible)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("SetResultVisibility: update failed")
		return fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return apperr.ErrExamNotFound
	}
	s.audit.Record("Set results visibility for exam %d to %t", examID, visible)
	return nil
}

func (s *examAdminService) ListResults(examID uint) ([]dto.ExamResultDTO, error) {
	results, err := s.resultRepo.FindAllByExamOrdered(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("ListResults: query failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	dtos := make([]dto.ExamResultDTO, 0, len(results))
	for _, res := range results {
		dtos = append(dtos, resultToDTO(res))
	}
	s.audit.Record("Retrieved results for exam %d", examID)
	return dtos, nil
}

func (s *examAdminService) examDetail(examID uint) (*dto.ExamDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to reload exam for response")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	var resp dto.ExamDetailDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("preparing exam response: %w", err)
	}
	resp.Questions = make([]dto.QuestionDetailDTO, len(exam.Questions))
	for i, q := range exam.Questions {
		var qDTO dto.QuestionDetailDTO
		copier.Copy(&qDTO, &q)
		qDTO.Options = optionTexts(q.Options)
		resp.Questions[i] = qDTO
	}
	return &resp, nil
}

func optionTexts(options []model.QuestionOption) []string {
	texts := make([]string, len(options))
	for i, opt := range options {
		texts[i] = opt.Text
	}
	return texts
}

func resultToDTO(res model.ExamResult) dto.ExamResultDTO {
	return dto.ExamResultDTO{
		ID:             res.ID,
		ExamID:         res.ExamID,
		StudentID:      res.StudentID,
		StudentName:    res.Student.Name,
		Score:          res.Score,
		TotalPossible:  res.TotalPossible,
		Percentage:     grading.Percentage(res.Score, res.TotalPossible),
		SubmissionTime: res.SubmissionTime,
	}
}
