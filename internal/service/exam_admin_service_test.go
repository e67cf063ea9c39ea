package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Pangolins/internal/apperr"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

func TestCreateExamValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*dto.ExamDraftDTO)
	}{
		{"empty title", func(d *dto.ExamDraftDTO) { d.Title = "" }},
		{"zero duration", func(d *dto.ExamDraftDTO) { d.DurationMinutes = 0 }},
		{"no questions", func(d *dto.ExamDraftDTO) { d.Questions = nil }},
		{"empty question text", func(d *dto.ExamDraftDTO) { d.Questions[0].Text = "" }},
		{"single option", func(d *dto.ExamDraftDTO) { d.Questions[0].Options = []string{"only"} }},
		{"empty option", func(d *dto.ExamDraftDTO) { d.Questions[1].Options[1] = "" }},
		{"correct index out of range", func(d *dto.ExamDraftDTO) { d.Questions[0].CorrectOption = 3 }},
		{"negative correct index", func(d *dto.ExamDraftDTO) { d.Questions[0].CorrectOption = -1 }},
		{"zero points", func(d *dto.ExamDraftDTO) { d.Questions[0].Points = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := basicDraft()
			tt.mutate(&draft)
			if _, err := f.admin.CreateExam(draft); !errors.Is(err, apperr.ErrValidationFailed) {
				t.Fatalf("CreateExam error = %v, want ErrValidationFailed", err)
			}
		})
	}

	var count int64
	f.db.Model(&model.Exam{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d exams persisted from rejected drafts, want 0", count)
	}
}

func TestCreateExamAtomicity(t *testing.T) {
	f := newFixture(t)

	const poison = "POISON-QUESTION"
	injected := errors.New("injected insert failure")
	err := f.db.Callback().Create().Before("gorm:create").Register("test_fail_insert", func(tx *gorm.DB) {
		if q, ok := tx.Statement.Dest.(*model.Question); ok && strings.Contains(q.Text, poison) {
			tx.AddError(injected)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	draft := basicDraft()
	for i := 0; i < 3; i++ {
		draft.Questions = append(draft.Questions, dto.QuestionDraftDTO{
			Text:          "Filler question",
			Options:       []string{"a", "b"},
			CorrectOption: 0,
			Points:        1,
		})
	}
	draft.Questions[2].Text = poison // fails on the third of five inserts

	if _, err := f.admin.CreateExam(draft); !errors.Is(err, apperr.ErrPersistence) {
		t.Fatalf("CreateExam error = %v, want ErrPersistence", err)
	}

	var exams, questions, options int64
	f.db.Model(&model.Exam{}).Count(&exams)
	f.db.Model(&model.Question{}).Count(&questions)
	f.db.Model(&model.QuestionOption{}).Count(&options)
	if exams != 0 || questions != 0 || options != 0 {
		t.Fatalf("partial write survived rollback: exams=%d questions=%d options=%d", exams, questions, options)
	}
}

func TestCreateExamDetail(t *testing.T) {
	f := newFixture(t)

	draft := basicDraft()
	detail, err := f.admin.CreateExam(draft)
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if detail.ID == 0 || !detail.Active {
		t.Fatalf("unexpected created exam: %+v", detail)
	}
	if len(detail.Questions) != len(draft.Questions) {
		t.Fatalf("created %d questions, want %d", len(detail.Questions), len(draft.Questions))
	}
	for i, q := range detail.Questions {
		want := draft.Questions[i]
		if q.Text != want.Text || q.CorrectOption != want.CorrectOption || q.Points != want.Points {
			t.Fatalf("question %d = %+v, want %+v", i, q, want)
		}
		if q.OrderInExam != i+1 {
			t.Fatalf("question %d order = %d, want %d", i, q.OrderInExam, i+1)
		}
		for j, opt := range q.Options {
			if opt != want.Options[j] {
				t.Fatalf("question %d option %d = %q, want %q", i, j, opt, want.Options[j])
			}
		}
	}
}

func TestUpdateExamReplacesQuestions(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.CreateExam(basicDraft())
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	// A result from before the update must survive it.
	seedStudent(t, f.db, "s1", "Ada")
	result := model.ExamResult{
		ExamID: created.ID, StudentID: "s1",
		Score: 3, TotalPossible: 5, SubmissionTime: time.Now(),
	}
	if err := f.db.Create(&result).Error; err != nil {
		t.Fatalf("seed result: %v", err)
	}

	replacement := dto.ExamDraftDTO{
		Title:           "History Midterm (rev 2)",
		DurationMinutes: 45,
		ResultsVisible:  true,
		Questions: []dto.QuestionDraftDTO{
			{Text: "New single question", Options: []string{"x", "y", "z", "w"}, CorrectOption: 3, Points: 10},
		},
	}
	updated, err := f.admin.UpdateExam(created.ID, replacement)
	if err != nil {
		t.Fatalf("UpdateExam: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed exam id: %d -> %d", created.ID, updated.ID)
	}
	if updated.Title != replacement.Title || updated.DurationMinutes != 45 || !updated.ResultsVisible {
		t.Fatalf("exam fields not replaced: %+v", updated)
	}
	if len(updated.Questions) != 1 || updated.Questions[0].Text != "New single question" {
		t.Fatalf("question set not replaced: %+v", updated.Questions)
	}

	var questions, options, results int64
	f.db.Model(&model.Question{}).Where("exam_id = ?", created.ID).Count(&questions)
	f.db.Model(&model.QuestionOption{}).Count(&options)
	f.db.Model(&model.ExamResult{}).Where("exam_id = ?", created.ID).Count(&results)
	if questions != 1 || options != 4 {
		t.Fatalf("stale rows after replace: questions=%d options=%d", questions, options)
	}
	if results != 1 {
		t.Fatalf("update touched results: %d rows, want 1", results)
	}
}

func TestUpdateExamNotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.admin.UpdateExam(12345, basicDraft()); !errors.Is(err, apperr.ErrExamNotFound) {
		t.Fatalf("UpdateExam error = %v, want ErrExamNotFound", err)
	}
}

func TestDeleteExamIsSoft(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.CreateExam(basicDraft())
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if err := f.admin.DeleteExam(created.ID); err != nil {
		t.Fatalf("DeleteExam: %v", err)
	}

	var exam model.Exam
	if err := f.db.First(&exam, created.ID).Error; err != nil {
		t.Fatalf("deleted exam removed from storage: %v", err)
	}
	if exam.Active {
		t.Fatal("exam still active after delete")
	}

	if err := f.admin.DeleteExam(9999); !errors.Is(err, apperr.ErrExamNotFound) {
		t.Fatalf("DeleteExam(missing) error = %v, want ErrExamNotFound", err)
	}
}

func TestSetResultVisibilityMissingExam(t *testing.T) {
	f := newFixture(t)
	if err := f.admin.SetResultVisibility(42, true); !errors.Is(err, apperr.ErrExamNotFound) {
		t.Fatalf("SetResultVisibility error = %v, want ErrExamNotFound", err)
	}
}

func TestListResultsOrderedByScore(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.CreateExam(basicDraft())
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	seedStudent(t, f.db, "s1", "Ada")
	seedStudent(t, f.db, "s2", "Grace")
	seedStudent(t, f.db, "s3", "Edsger")
	now := time.Now()
	rows := []model.ExamResult{
		{ExamID: created.ID, StudentID: "s1", Score: 2, TotalPossible: 5, SubmissionTime: now},
		{ExamID: created.ID, StudentID: "s2", Score: 5, TotalPossible: 5, SubmissionTime: now},
		{ExamID: created.ID, StudentID: "s3", Score: 2, TotalPossible: 5, SubmissionTime: now},
	}
	for i := range rows {
		if err := f.db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed result: %v", err)
		}
	}

	results, err := f.admin.ListResults(created.ID)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].StudentID != "s2" {
		t.Fatalf("top result is %s, want s2", results[0].StudentID)
	}
	// Tie broken by insertion order.
	if results[1].StudentID != "s1" || results[2].StudentID != "s3" {
		t.Fatalf("tie order wrong: %s, %s", results[1].StudentID, results[2].StudentID)
	}
	if results[0].StudentName != "Grace" {
		t.Fatalf("student name not joined: %+v", results[0])
	}
	if results[0].Percentage != 100 {
		t.Fatalf("percentage = %v, want 100", results[0].Percentage)
	}
}
