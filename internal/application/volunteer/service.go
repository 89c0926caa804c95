package volunteer

import (
	"context"
	"fmt"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/Shreyas75/cmv-backend/internal/pkg/id"
	"github.com/Shreyas75/cmv-backend/internal/pkg/validate"
)

type Store interface {
	Put(ctx context.Context, v *domain.Volunteer) error
}

type Service interface {
	Create(ctx context.Context, req domain.CreateVolunteerRequest) (*domain.Volunteer, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, req domain.CreateVolunteerRequest) (*domain.Volunteer, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	v := &domain.Volunteer{
		VolunteerID:        id.New(),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PhoneNo:            req.PhoneNo,
		DOB:                req.DOB,
		AdditionalComments: req.AdditionalComments,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.store.Put(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
