package event

import (
	"context"
	"testing"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockArchivedStore struct{ mock.Mock }

func (m *mockArchivedStore) Put(ctx context.Context, e *domain.ArchivedEvent) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockArchivedStore) Get(ctx context.Context, eventID string) (*domain.ArchivedEvent, error) {
	args := m.Called(ctx, eventID)
	if e, _ := args.Get(0).(*domain.ArchivedEvent); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArchivedStore) Scan(ctx context.Context) ([]domain.ArchivedEvent, error) {
	args := m.Called(ctx)
	if e, _ := args.Get(0).([]domain.ArchivedEvent); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArchivedStore) Update(ctx context.Context, eventID string, updates map[string]interface{}) error {
	return m.Called(ctx, eventID, updates).Error(0)
}

func (m *mockArchivedStore) Delete(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

type mockMedia struct{ mock.Mock }

func (m *mockMedia) UploadImage(ctx context.Context, b64 string) (string, error) {
	args := m.Called(ctx, b64)
	return args.String(0), args.Error(1)
}

func (m *mockMedia) UploadImages(ctx context.Context, b64 []string) ([]string, error) {
	args := m.Called(ctx, b64)
	if urls, _ := args.Get(0).([]string); urls != nil {
		return urls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedia) DeleteImage(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func TestCreateArchived_UploadsCoverAndGallery(t *testing.T) {
	store := &mockArchivedStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	md := &mockMedia{}
	md.On("UploadImage", mock.Anything, "cover-b64").Return("https://cdn/uploads/cover.jpg", nil)
	md.On("UploadImages", mock.Anything, []string{"g1", "g2"}).
		Return([]string{"https://cdn/uploads/g1.jpg", "https://cdn/uploads/g2.jpg"}, nil)

	svc := NewService(nil, nil, store, md)
	e, err := svc.CreateArchived(context.Background(), domain.CreateArchivedEventRequest{
		Title:            "Gita Jayanti 2024",
		Description:      "Annual celebration",
		CoverImageBase64: "cover-b64",
		ImagesBase64:     []string{"g1", "g2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/uploads/cover.jpg", e.CoverImage)
	assert.Len(t, e.Images, 2)
}

func TestDeleteArchived_RemovesUploadedImages(t *testing.T) {
	existing := &domain.ArchivedEvent{
		EventID:    "ev-1",
		CoverImage: "https://cdn/uploads/cover.jpg",
		Images:     []string{"https://cdn/uploads/g1.jpg"},
	}
	store := &mockArchivedStore{}
	store.On("Get", mock.Anything, "ev-1").Return(existing, nil)
	store.On("Delete", mock.Anything, "ev-1").Return(nil)
	md := &mockMedia{}
	md.On("DeleteImage", mock.Anything, "https://cdn/uploads/cover.jpg").Return(nil)
	md.On("DeleteImage", mock.Anything, "https://cdn/uploads/g1.jpg").Return(nil)

	svc := NewService(nil, nil, store, md)
	require.NoError(t, svc.DeleteArchived(context.Background(), "ev-1"))
	md.AssertExpectations(t)
}

func TestDeleteArchived_UnknownEventSkipsCleanup(t *testing.T) {
	store := &mockArchivedStore{}
	store.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	md := &mockMedia{}

	svc := NewService(nil, nil, store, md)
	err := svc.DeleteArchived(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	md.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
