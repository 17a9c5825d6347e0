package services

import (
	"errors"
	"fmt"

	"blog-cms/models"
	"blog-cms/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Create(input models.UserInput) (*models.StoredUser, error)
	Update(id uint, input models.UserInput) (*models.StoredUser, error)
	Delete(id uint) (*models.StoredUser, error)
	GetAll() ([]models.StoredUser, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(input models.UserInput) (*models.StoredUser, error) {
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err == nil && existing != nil && existing.ID > 0 {
		return nil, fmt.Errorf("%w: email %q", models.ErrConflict, input.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	stored := user.Stored()
	return &stored, nil
}

func (s *userService) Update(id uint, input models.UserInput) (*models.StoredUser, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, id)
		}
		return nil, err
	}

	// Another user may already own the new email.
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err == nil && existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: email %q", models.ErrConflict, input.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.Password = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	stored := user.Stored()
	return &stored, nil
}

func (s *userService) Delete(id uint) (*models.StoredUser, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, id)
		}
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}

	stored := user.Stored()
	return &stored, nil
}

func (s *userService) GetAll() ([]models.StoredUser, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stored := make([]models.StoredUser, 0, len(users))
	for _, user := range users {
		stored = append(stored, user.Stored())
	}
	return stored, nil
}
