package event

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/media"
	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/Shreyas75/cmv-backend/internal/pkg/id"
	"github.com/Shreyas75/cmv-backend/internal/pkg/validate"
)

type UpcomingStore interface {
	Put(ctx context.Context, e *domain.UpcomingEvent) error
	Get(ctx context.Context, eventID string) (*domain.UpcomingEvent, error)
	Scan(ctx context.Context) ([]domain.UpcomingEvent, error)
	Update(ctx context.Context, eventID string, updates map[string]interface{}) error
	Delete(ctx context.Context, eventID string) error
}

type FeaturedStore interface {
	Put(ctx context.Context, e *domain.FeaturedEvent) error
	Get(ctx context.Context, eventID string) (*domain.FeaturedEvent, error)
	Scan(ctx context.Context) ([]domain.FeaturedEvent, error)
	Delete(ctx context.Context, eventID string) error
}

type ArchivedStore interface {
	Put(ctx context.Context, e *domain.ArchivedEvent) error
	Get(ctx context.Context, eventID string) (*domain.ArchivedEvent, error)
	Scan(ctx context.Context) ([]domain.ArchivedEvent, error)
	Update(ctx context.Context, eventID string, updates map[string]interface{}) error
	Delete(ctx context.Context, eventID string) error
}

// Service manages the three event collections the website shows. Inline
// base64 images are pushed to the media store before the event is persisted.
type Service interface {
	ListUpcoming(ctx context.Context) ([]domain.UpcomingEvent, error)
	GetUpcoming(ctx context.Context, eventID string) (*domain.UpcomingEvent, error)
	CreateUpcoming(ctx context.Context, req domain.CreateUpcomingEventRequest) (*domain.UpcomingEvent, error)
	UpdateUpcoming(ctx context.Context, eventID string, req domain.UpdateUpcomingEventRequest) (*domain.UpcomingEvent, error)
	DeleteUpcoming(ctx context.Context, eventID string) error

	ListFeatured(ctx context.Context) ([]domain.FeaturedEvent, error)
	GetFeatured(ctx context.Context, eventID string) (*domain.FeaturedEvent, error)
	CreateFeatured(ctx context.Context, req domain.CreateFeaturedEventRequest) (*domain.FeaturedEvent, error)
	DeleteFeatured(ctx context.Context, eventID string) error

	ListArchived(ctx context.Context) ([]domain.ArchivedEvent, error)
	GetArchived(ctx context.Context, eventID string) (*domain.ArchivedEvent, error)
	ListArchivedYears(ctx context.Context) ([]int, error)
	CreateArchived(ctx context.Context, req domain.CreateArchivedEventRequest) (*domain.ArchivedEvent, error)
	UpdateArchived(ctx context.Context, eventID string, req domain.UpdateArchivedEventRequest) (*domain.ArchivedEvent, error)
	DeleteArchived(ctx context.Context, eventID string) error
}

type service struct {
	upcoming UpcomingStore
	featured FeaturedStore
	archived ArchivedStore
	media    media.Service
}

func NewService(upcoming UpcomingStore, featured FeaturedStore, archived ArchivedStore, media media.Service) Service {
	return &service{upcoming: upcoming, featured: featured, archived: archived, media: media}
}

func (s *service) ListUpcoming(ctx context.Context) ([]domain.UpcomingEvent, error) {
	events, err := s.upcoming.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (s *service) GetUpcoming(ctx context.Context, eventID string) (*domain.UpcomingEvent, error) {
	return s.upcoming.Get(ctx, eventID)
}

func (s *service) CreateUpcoming(ctx context.Context, req domain.CreateUpcomingEventRequest) (*domain.UpcomingEvent, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	var imageURL string
	if req.ImageBase64 != "" {
		url, err := s.media.UploadImage(ctx, req.ImageBase64)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	imageURLs, err := s.uploadAll(ctx, req.ImagesBase64)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &domain.UpcomingEvent{
		EventID:     id.New(),
		EventName:   req.EventName,
		Description: req.Description,
		Schedule:    req.Schedule,
		Highlights:  req.Highlights,
		Contact:     req.Contact,
		Image:       imageURL,
		Images:      imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.upcoming.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) UpdateUpcoming(ctx context.Context, eventID string, req domain.UpdateUpcomingEventRequest) (*domain.UpcomingEvent, error) {
	if _, err := s.upcoming.Get(ctx, eventID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if req.EventName != nil {
		updates["event_name"] = *req.EventName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Schedule != nil {
		updates["schedule"] = *req.Schedule
	}
	if req.Highlights != nil {
		updates["highlights"] = *req.Highlights
	}
	if req.Contact != nil {
		updates["contact"] = *req.Contact
	}
	if req.ImageBase64 != nil && *req.ImageBase64 != "" {
		url, err := s.media.UploadImage(ctx, *req.ImageBase64)
		if err != nil {
			return nil, err
		}
		updates["image"] = url
	}
	if err := s.upcoming.Update(ctx, eventID, updates); err != nil {
		return nil, err
	}
	return s.upcoming.Get(ctx, eventID)
}

func (s *service) DeleteUpcoming(ctx context.Context, eventID string) error {
	e, err := s.upcoming.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.upcoming.Delete(ctx, eventID); err != nil {
		return err
	}
	s.cleanupImages(ctx, e.AllImages())
	return nil
}

func (s *service) ListFeatured(ctx context.Context) ([]domain.FeaturedEvent, error) {
	events, err := s.featured.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	return events, nil
}

func (s *service) GetFeatured(ctx context.Context, eventID string) (*domain.FeaturedEvent, error) {
	return s.featured.Get(ctx, eventID)
}

func (s *service) CreateFeatured(ctx context.Context, req domain.CreateFeaturedEventRequest) (*domain.FeaturedEvent, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrBadRequest)
		}
		date = parsed
	}

	var coverURL string
	if req.CoverImageBase64 != "" {
		url, err := s.media.UploadImage(ctx, req.CoverImageBase64)
		if err != nil {
			return nil, err
		}
		coverURL = url
	}
	imageURLs, err := s.uploadAll(ctx, req.ImagesBase64)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &domain.FeaturedEvent{
		EventID:     id.New(),
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Schedule:    req.Schedule,
		Highlights:  req.Highlights,
		Contact:     req.Contact,
		CoverImage:  coverURL,
		Images:      imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.featured.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) DeleteFeatured(ctx context.Context, eventID string) error {
	e, err := s.featured.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.featured.Delete(ctx, eventID); err != nil {
		return err
	}
	s.cleanupImages(ctx, e.AllImages())
	return nil
}

func (s *service) ListArchived(ctx context.Context) ([]domain.ArchivedEvent, error) {
	events, err := s.archived.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (s *service) GetArchived(ctx context.Context, eventID string) (*domain.ArchivedEvent, error) {
	return s.archived.Get(ctx, eventID)
}

// ListArchivedYears returns the distinct years the archive covers, newest first.
func (s *service) ListArchivedYears(ctx context.Context) ([]int, error) {
	events, err := s.archived.Scan(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	var years []int
	for i := range events {
		y := events[i].Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *service) CreateArchived(ctx context.Context, req domain.CreateArchivedEventRequest) (*domain.ArchivedEvent, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	var coverURL string
	if req.CoverImageBase64 != "" {
		url, err := s.media.UploadImage(ctx, req.CoverImageBase64)
		if err != nil {
			return nil, err
		}
		coverURL = url
	}
	imageURLs, err := s.uploadAll(ctx, req.ImagesBase64)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &domain.ArchivedEvent{
		EventID:     id.New(),
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  coverURL,
		Images:      imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.archived.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) UpdateArchived(ctx context.Context, eventID string, req domain.UpdateArchivedEventRequest) (*domain.ArchivedEvent, error) {
	if _, err := s.archived.Get(ctx, eventID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverImageBase64 != nil && *req.CoverImageBase64 != "" {
		url, err := s.media.UploadImage(ctx, *req.CoverImageBase64)
		if err != nil {
			return nil, err
		}
		updates["cover_image"] = url
	}
	if req.ImagesBase64 != nil {
		urls, err := s.uploadAll(ctx, *req.ImagesBase64)
		if err != nil {
			return nil, err
		}
		updates["images"] = urls
	}
	if err := s.archived.Update(ctx, eventID, updates); err != nil {
		return nil, err
	}
	return s.archived.Get(ctx, eventID)
}

func (s *service) DeleteArchived(ctx context.Context, eventID string) error {
	e, err := s.archived.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.archived.Delete(ctx, eventID); err != nil {
		return err
	}
	s.cleanupImages(ctx, e.AllImages())
	return nil
}

// cleanupImages removes uploaded media after its event record is gone.
// Best effort: an orphaned object is logged, never surfaced to the caller.
func (s *service) cleanupImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.media.DeleteImage(ctx, url); err != nil {
			slog.Warn("failed to delete event image", "url", url, "err", err)
		}
	}
}

func (s *service) uploadAll(ctx context.Context, b64 []string) ([]string, error) {
	if len(b64) == 0 {
		return nil, nil
	}
	return s.media.UploadImages(ctx, b64)
}
