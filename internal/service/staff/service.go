package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goalline/academy-backend-go/internal/domain/staff"
	"github.com/goalline/academy-backend-go/internal/domain/user"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/pkg/email"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type StaffServiceImpl struct {
	db *database.DB
	staff.Repository
	user.UserRepository
	emailService email.EmailService
	loginURL     string
}

func NewStaffService(
	db *database.DB,
	staffRepository staff.Repository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	loginURL string,
) staff.Service {
	return &StaffServiceImpl{
		db:             db,
		Repository:     staffRepository,
		UserRepository: userRepository,
		emailService:   emailService,
		loginURL:       loginURL,
	}
}

// Create implements staff.Service. The login user and the staff profile are
// created in one transaction; the welcome mail goes out after commit.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error) {
	if err := req.Validate(); err != nil {
		return staff.Staff{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return staff.Staff{}, staff.ErrEmailExists
	} else if err != pgx.ErrNoRows {
		return staff.Staff{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	var created staff.Staff
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.Role(req.Role),
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err = s.Repository.Create(txCtx, staff.Staff{
			UserID:         newUser.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			Role:           newUser.Role,
			Specialization: req.Specialization,
			IsActive:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}
		return nil
	})
	if err != nil {
		return staff.Staff{}, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendStaffWelcome(created.Email, created.FullName(), string(created.Role), s.loginURL); err != nil {
			slog.Error("Failed to send staff welcome email", "staff_id", created.ID, "error", err)
		}
	}

	return created, nil
}

// GetByID implements staff.Service.
func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return found, nil
}

// List implements staff.Service.
func (s *StaffServiceImpl) List(ctx context.Context, coachesOnly bool) ([]staff.Staff, error) {
	members, err := s.Repository.List(ctx, coachesOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return members, nil
}

// Update implements staff.Service.
func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.Staff, error) {
	if err := req.Validate(); err != nil {
		return staff.Staff{}, err
	}

	found, err := s.GetByID(ctx, id)
	if err != nil {
		return staff.Staff{}, err
	}

	if req.FirstName != nil {
		found.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		found.LastName = *req.LastName
	}
	if req.Phone != nil {
		found.Phone = req.Phone
	}
	if req.Specialization != nil {
		found.Specialization = req.Specialization
	}
	if req.IsActive != nil {
		found.IsActive = *req.IsActive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.Repository.Update(txCtx, found); err != nil {
			return fmt.Errorf("failed to update staff: %w", err)
		}

		// Deactivating a staff member also locks the login
		if req.IsActive != nil {
			userData, err := s.UserRepository.GetByID(txCtx, found.UserID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}
			userData.IsActive = *req.IsActive
			if err := s.UserRepository.Update(txCtx, userData); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return staff.Staff{}, err
	}

	return found, nil
}

// Delete implements staff.Service.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	found, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.Repository.SoftDelete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}

		userData, err := s.UserRepository.GetByID(txCtx, found.UserID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		userData.IsActive = false
		if err := s.UserRepository.Update(txCtx, userData); err != nil {
			return fmt.Errorf("failed to deactivate user: %w", err)
		}
		return nil
	})
}
