package carousel

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/Shreyas75/cmv-backend/internal/pkg/id"
	"github.com/Shreyas75/cmv-backend/internal/pkg/validate"
)

type Store interface {
	Put(ctx context.Context, item *domain.CarouselItem) error
	Scan(ctx context.Context) ([]domain.CarouselItem, error)
	Delete(ctx context.Context, itemID string) error
}

type Service interface {
	List(ctx context.Context) ([]domain.CarouselItem, error)
	Create(ctx context.Context, req domain.CreateCarouselItemRequest) (*domain.CarouselItem, error)
	Delete(ctx context.Context, itemID string) error
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

// List returns all slides, newest first.
func (s *service) List(ctx context.Context) ([]domain.CarouselItem, error) {
	items, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateCarouselItemRequest) (*domain.CarouselItem, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	item := &domain.CarouselItem{
		ItemID:      id.New(),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Put(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("item id is required: %w", domain.ErrBadRequest)
	}
	return s.store.Delete(ctx, itemID)
}
