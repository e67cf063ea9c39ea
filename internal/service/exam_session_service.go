package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Pangolins/internal/apperr"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/grading"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/lshigami/Pangolins/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSessionService drives a student's pass through an exam:
// NotStarted -> InProgress (StartAttempt) -> Graded (SubmitAttempt).
// There is no transition back.
type ExamSessionService interface {
	ListAvailableExams(studentID string) ([]dto.ExamSummaryDTO, error)
	StartAttempt(examID uint, studentID string) (*dto.ExamPayloadDTO, error)
	SubmitAttempt(examID uint, studentID string, answers []dto.AnswerDTO) (*dto.SubmissionReceiptDTO, error)
	FetchResult(examID uint, studentID string) (*dto.ExamResultDTO, error)
}

type examSessionService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	registry   *session.Registry
	audit      AuditLog
	db         *gorm.DB
}

func NewExamSessionService(
	examRepo repository.ExamRepository,
	resultRepo repository.ResultRepository,
	registry *session.Registry,
	audit AuditLog,
	db *gorm.DB,
) ExamSessionService {
	return &examSessionService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
		registry:   registry,
		audit:      audit,
		db:         db,
	}
}

func (s *examSessionService) ListAvailableExams(studentID string) ([]dto.ExamSummaryDTO, error) {
	exams, err := s.examRepo.FindAllActiveWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListAvailableExams: query failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	summaries := make([]dto.ExamSummaryDTO, 0, len(exams))
	for _, e := range exams {
		summaries = append(summaries, dto.ExamSummaryDTO{
			ID:              e.Exam.ID,
			Title:           e.Exam.Title,
			Description:     e.Exam.Description,
			DurationMinutes: e.Exam.DurationMinutes,
			QuestionCount:   e.QuestionCount,
			CreatedAt:       e.Exam.CreatedAt,
		})
	}
	s.audit.Record("Student %s retrieved available exams", studentID)
	return summaries, nil
}

// StartAttempt opens the session and returns the exam payload with the
// answer key stripped. Retakes and concurrent starts are rejected before
// any session state is created.
func (s *examSessionService) StartAttempt(examID uint, studentID string) (*dto.ExamPayloadDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("StartAttempt: exam load failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}
	if !exam.Active {
		return nil, apperr.ErrExamNotFound
	}

	taken, err := s.resultRepo.ExistsForExamAndStudent(examID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("StartAttempt: retake check failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}
	if taken {
		s.audit.Record("Student %s attempted to retake exam %d", studentID, examID)
		return nil, apperr.ErrAlreadyTaken
	}

	sess, err := s.registry.Open(studentID, examID, time.Duration(exam.DurationMinutes)*time.Minute)
	if err != nil {
		s.audit.Record("Student %s attempted to start exam %d with an attempt already open", studentID, examID)
		return nil, err
	}

	payload := &dto.ExamPayloadDTO{
		ID:              exam.ID,
		Title:           exam.Title,
		Description:     exam.Description,
		DurationMinutes: exam.DurationMinutes,
		Questions:       make([]dto.QuestionPayloadDTO, len(exam.Questions)),
		SessionHandle:   sess.Handle.String(),
		StartedAt:       sess.StartTime,
		Deadline:        sess.Deadline(),
	}
	for i, q := range exam.Questions {
		payload.Questions[i] = dto.QuestionPayloadDTO{
			ID:          q.ID,
			Text:        q.Text,
			Options:     optionTexts(q.Options),
			Points:      q.Points,
			OrderInExam: q.OrderInExam,
		}
	}

	s.audit.Record("Student %s started exam %d", studentID, examID)
	return payload, nil
}

// SubmitAttempt grades and persists the submission in one transaction.
// The session is removed only after the transaction commits, so a failed
// submission can be retried. Late submissions inside the grace window are
// accepted and flagged in the activity trail.
func (s *examSessionService) SubmitAttempt(examID uint, studentID string, answers []dto.AnswerDTO) (*dto.SubmissionReceiptDTO, error) {
	sess, ok := s.registry.Lookup(studentID, examID)
	if !ok {
		s.audit.Record("Student %s submitted exam %d without an active session", studentID, examID)
		return nil, apperr.ErrNoActiveSession
	}

	now := time.Now()
	if s.registry.IsExpired(sess, now) {
		s.audit.Record("Student %s submitted exam %d after time expired", studentID, examID)
	}

	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitAttempt: answer key load failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	key := make(map[uint]grading.KeyEntry, len(exam.Questions))
	for _, q := range exam.Questions {
		key[q.ID] = grading.KeyEntry{CorrectOption: q.CorrectOption, Points: q.Points}
	}
	graded := make([]grading.Answer, len(answers))
	for i, a := range answers {
		graded[i] = grading.Answer{QuestionID: a.QuestionID, SelectedOption: a.SelectedOption}
	}
	score, totalPossible := grading.Grade(key, graded)

	result := model.ExamResult{
		ExamID:         examID,
		StudentID:      studentID,
		Score:          score,
		TotalPossible:  totalPossible,
		SubmissionTime: now,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("inserting result: %w", err)
		}
		if len(answers) == 0 {
			return nil
		}
		rows := make([]model.StudentAnswer, len(answers))
		for i, a := range answers {
			rows[i] = model.StudentAnswer{
				ExamID:         examID,
				StudentID:      studentID,
				QuestionID:     a.QuestionID,
				SelectedOption: a.SelectedOption,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("inserting answers: %w", err)
		}
		return nil
	})
	if err != nil {
		// Session stays registered so the student can retry.
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: transaction rolled back")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	s.registry.Close(studentID, examID)
	s.audit.Record("Student %s submitted exam %d with score %d/%d", studentID, examID, score, totalPossible)
	return &dto.SubmissionReceiptDTO{Submitted: true, SubmittedAt: now}, nil
}

// FetchResult serves a student's own result, gated on the exam's
// visibility flag.
func (s *examSessionService) FetchResult(examID uint, studentID string) (*dto.ExamResultDTO, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("FetchResult: exam load failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}
	if !exam.ResultsVisible {
		s.audit.Record("Student %s attempted to view results for exam %d but results are not visible", studentID, examID)
		return nil, apperr.ErrResultsHidden
	}

	result, err := s.resultRepo.FindByExamAndStudent(examID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrResultNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("FetchResult: query failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
	}

	resp := resultToDTO(*result)
	s.audit.Record("Student %s viewed results for exam %d", studentID, examID)
	return &resp, nil
}
