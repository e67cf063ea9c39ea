package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/lshigami/Pangolins/internal/session"
	"github.com/lshigami/Pangolins/internal/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.Teacher{},
		&model.Student{},
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.ExamResult{},
		&model.StudentAnswer{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	registry *session.Registry
	admin    ExamAdminService
	sessions ExamSessionService
	auth     AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testDB(t)
	registry := session.NewRegistry(5 * time.Minute)
	audit := NewAuditLog()
	tokens := token.NewManager("test-secret", time.Hour)

	examRepo := repository.NewExamRepository(db)
	resultRepo := repository.NewResultRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &fixture{
		db:       db,
		registry: registry,
		admin:    NewExamAdminService(examRepo, resultRepo, audit, db),
		sessions: NewExamSessionService(examRepo, resultRepo, registry, audit, db),
		auth:     NewAuthService(userRepo, tokens, audit),
	}
}

func seedStudent(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	student := model.Student{ID: id, Username: id, Password: "secret", Name: name}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student %s: %v", id, err)
	}
}

func basicDraft() dto.ExamDraftDTO {
	return dto.ExamDraftDTO{
		Title:           "History Midterm",
		Description:     "Chapters 1-4",
		DurationMinutes: 30,
		Questions: []dto.QuestionDraftDTO{
			{
				Text:          "In which year did the war end?",
				Options:       []string{"1943", "1945", "1948"},
				CorrectOption: 1,
				Points:        3,
			},
			{
				Text:          "Who signed the treaty?",
				Options:       []string{"The chancellor", "The ambassador"},
				CorrectOption: 0,
				Points:        2,
			},
		},
	}
}
