package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUploader struct{ mock.Mock }

func (m *mockUploader) UploadBase64(ctx context.Context, b64Data string) (string, error) {
	args := m.Called(ctx, b64Data)
	return args.String(0), args.Error(1)
}

func (m *mockUploader) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestUploadImages_FirstFailureAbortsBatch(t *testing.T) {
	up := &mockUploader{}
	up.On("UploadBase64", mock.Anything, "img-1").Return("https://cdn.example.com/uploads/a.jpg", nil)
	up.On("UploadBase64", mock.Anything, "img-2").Return("", errors.New("put object failed"))

	urls, err := NewService(up).UploadImages(context.Background(), []string{"img-1", "img-2", "img-3"})
	require.Error(t, err)
	assert.Nil(t, urls)
	up.AssertNotCalled(t, "UploadBase64", mock.Anything, "img-3")
}

func TestDeleteImage_ExtractsKeyFromUploadURL(t *testing.T) {
	up := &mockUploader{}
	up.On("Delete", mock.Anything, "uploads/01J8ZK.png").Return(nil)

	err := NewService(up).DeleteImage(context.Background(),
		"https://cmv-media.s3.ap-south-1.amazonaws.com/uploads/01J8ZK.png")
	require.NoError(t, err)
	up.AssertExpectations(t)
}

func TestDeleteImage_IgnoresExternalURL(t *testing.T) {
	up := &mockUploader{}

	err := NewService(up).DeleteImage(context.Background(), "https://example.com/banner.jpg")
	require.NoError(t, err)
	up.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
