package repository

import (
	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindTeacherByCredentials(username, password string) (*model.Teacher, error)
	FindStudentByCredentials(username, password string) (*model.Student, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Credentials are matched verbatim against the stored row, mirroring the
// deployed schema's plaintext columns.
func (r *userRepository) FindTeacherByCredentials(username, password string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.Where("username = ? AND password = ?", username, password).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *userRepository) FindStudentByCredentials(username, password string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("username = ? AND password = ?", username, password).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}
