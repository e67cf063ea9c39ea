package service

import (
	"testing"
	"time"

	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/token"
)

func TestAuthenticateTeacher(t *testing.T) {
	f := newFixture(t)
	teacher := model.Teacher{Username: "prof", Password: "chalk", Name: "Prof. Moriarty"}
	if err := f.db.Create(&teacher).Error; err != nil {
		t.Fatalf("seeding teacher: %v", err)
	}

	resp, err := f.auth.Authenticate(dto.LoginRequestDTO{Username: "prof", Password: "chalk", IsTeacher: true})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !resp.Authenticated {
		t.Fatal("expected teacher login to succeed")
	}
	if resp.Name != "Prof. Moriarty" {
		t.Fatalf("name = %q, want Prof. Moriarty", resp.Name)
	}
	if resp.Token == "" {
		t.Fatal("teacher login did not issue a token")
	}

	claims, err := token.NewManager("test-secret", time.Hour).Verify(resp.Token)
	if err != nil {
		t.Fatalf("verifying issued token: %v", err)
	}
	if claims.Username != "prof" || claims.Role != token.RoleTeacher {
		t.Fatalf("claims = %+v, want prof/teacher", claims)
	}
}

func TestAuthenticateStudent(t *testing.T) {
	f := newFixture(t)
	student := model.Student{ID: "s1", Username: "ada", Password: "engine", Name: "Ada"}
	if err := f.db.Create(&student).Error; err != nil {
		t.Fatalf("seeding student: %v", err)
	}

	resp, err := f.auth.Authenticate(dto.LoginRequestDTO{Username: "ada", Password: "engine"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !resp.Authenticated {
		t.Fatal("expected student login to succeed")
	}
	if resp.StudentID != "s1" {
		t.Fatalf("student id = %q, want s1", resp.StudentID)
	}
	if resp.Token != "" {
		t.Fatal("student login must not issue a teacher token")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	teacher := model.Teacher{Username: "prof", Password: "chalk", Name: "Prof. Moriarty"}
	if err := f.db.Create(&teacher).Error; err != nil {
		t.Fatalf("seeding teacher: %v", err)
	}

	cases := []dto.LoginRequestDTO{
		{Username: "prof", Password: "wrong", IsTeacher: true},
		{Username: "nobody", Password: "chalk", IsTeacher: true},
		// Teachers cannot log in through the student table.
		{Username: "prof", Password: "chalk"},
	}
	for _, req := range cases {
		resp, err := f.auth.Authenticate(req)
		if err != nil {
			t.Fatalf("Authenticate(%q): %v", req.Username, err)
		}
		if resp.Authenticated || resp.Token != "" {
			t.Fatalf("Authenticate(%q) = %+v, want rejection", req.Username, resp)
		}
	}
}
