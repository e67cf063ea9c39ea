package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Pangolins/internal/apperr"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/lshigami/Pangolins/internal/token"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	Authenticate(req dto.LoginRequestDTO) (*dto.LoginResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	audit    AuditLog
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, audit AuditLog) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, audit: audit}
}

// Authenticate matches credentials against the role's own table. A miss
// is a normal outcome (Authenticated=false), not an error.
func (s *authService) Authenticate(req dto.LoginRequestDTO) (*dto.LoginResponseDTO, error) {
	role := "student"
	if req.IsTeacher {
		role = token.RoleTeacher
	}

	resp := &dto.LoginResponseDTO{}
	if req.IsTeacher {
		teacher, err := s.userRepo.FindTeacherByCredentials(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.audit.Record("%s (%s) authentication failed", req.Username, role)
				return resp, nil
			}
			log.Error().Err(err).Str("username", req.Username).Msg("Authenticate: teacher lookup failed")
			return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
		}
		signed, err := s.tokens.Generate(teacher.Username, token.RoleTeacher)
		if err != nil {
			log.Error().Err(err).Str("username", req.Username).Msg("Authenticate: token generation failed")
			return nil, fmt.Errorf("issuing token: %w", err)
		}
		resp.Authenticated = true
		resp.Name = teacher.Name
		resp.Token = signed
	} else {
		student, err := s.userRepo.FindStudentByCredentials(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.audit.Record("%s (%s) authentication failed", req.Username, role)
				return resp, nil
			}
			log.Error().Err(err).Str("username", req.Username).Msg("Authenticate: student lookup failed")
			return nil, fmt.Errorf("%w: %w", apperr.ErrPersistence, err)
		}
		resp.Authenticated = true
		resp.Name = student.Name
		resp.StudentID = student.ID
	}

	s.audit.Record("%s (%s) authentication successful", req.Username, role)
	return resp, nil
}
