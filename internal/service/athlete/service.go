package athlete

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/athlete"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AthleteServiceImpl struct {
	db *database.DB
	athlete.Repository
}

func NewAthleteService(db *database.DB, athleteRepository athlete.Repository) athlete.Service {
	return &AthleteServiceImpl{
		db:         db,
		Repository: athleteRepository,
	}
}

// Create implements athlete.Service. The code is assigned from the historic
// athlete count inside the transaction; soft-deleted athletes still hold
// their number.
func (s *AthleteServiceImpl) Create(ctx context.Context, req athlete.CreateAthleteRequest) (athlete.Athlete, error) {
	if err := req.Validate(); err != nil {
		return athlete.Athlete{}, err
	}

	exists, err := s.Repository.GuardianEmailExists(ctx, req.GuardianEmail)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("failed to check guardian email: %w", err)
	}
	if exists {
		return athlete.Athlete{}, athlete.ErrGuardianEmailExists
	}

	dob, _ := validator.IsValidDate(req.DateOfBirth)

	var created athlete.Athlete
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		count, err := s.Repository.Count(txCtx)
		if err != nil {
			return fmt.Errorf("failed to count athletes: %w", err)
		}

		created, err = s.Repository.Create(txCtx, athlete.Athlete{
			Code:          fmt.Sprintf("ATH-%05d", count+1),
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			DateOfBirth:   dob,
			Position:      req.Position,
			GuardianName:  req.GuardianName,
			GuardianEmail: req.GuardianEmail,
			GuardianPhone: req.GuardianPhone,
			Status:        athlete.StatusTrial,
			BatchID:       req.BatchID,
			JoinedAt:      time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to create athlete: %w", err)
		}
		return nil
	})
	if err != nil {
		return athlete.Athlete{}, err
	}

	return created, nil
}

// GetByID implements athlete.Service.
func (s *AthleteServiceImpl) GetByID(ctx context.Context, id string) (athlete.Athlete, error) {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return athlete.Athlete{}, athlete.ErrAthleteNotFound
		}
		return athlete.Athlete{}, fmt.Errorf("failed to get athlete: %w", err)
	}
	return found, nil
}

// List implements athlete.Service.
func (s *AthleteServiceImpl) List(ctx context.Context, filter athlete.Filter) (athlete.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return athlete.ListResponse{}, err
	}

	athletes, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return athlete.ListResponse{}, fmt.Errorf("failed to list athletes: %w", err)
	}

	return athlete.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Athletes:   athletes,
	}, nil
}

// Update implements athlete.Service.
func (s *AthleteServiceImpl) Update(ctx context.Context, id string, req athlete.UpdateAthleteRequest) (athlete.Athlete, error) {
	if err := req.Validate(); err != nil {
		return athlete.Athlete{}, err
	}

	found, err := s.GetByID(ctx, id)
	if err != nil {
		return athlete.Athlete{}, err
	}

	if req.FirstName != nil {
		found.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		found.LastName = *req.LastName
	}
	if req.Position != nil {
		found.Position = req.Position
	}
	if req.GuardianName != nil {
		found.GuardianName = *req.GuardianName
	}
	if req.GuardianEmail != nil && *req.GuardianEmail != found.GuardianEmail {
		exists, err := s.Repository.GuardianEmailExists(ctx, *req.GuardianEmail)
		if err != nil {
			return athlete.Athlete{}, fmt.Errorf("failed to check guardian email: %w", err)
		}
		if exists {
			return athlete.Athlete{}, athlete.ErrGuardianEmailExists
		}
		found.GuardianEmail = *req.GuardianEmail
	}
	if req.GuardianPhone != nil {
		found.GuardianPhone = *req.GuardianPhone
	}
	if req.Status != nil {
		found.Status = athlete.Status(*req.Status)
	}
	if req.BatchID != nil {
		found.BatchID = req.BatchID
	}

	if err := s.Repository.Update(ctx, found); err != nil {
		return athlete.Athlete{}, fmt.Errorf("failed to update athlete: %w", err)
	}

	return found, nil
}

// Delete implements athlete.Service.
func (s *AthleteServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.Repository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}
	return nil
}
