package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, path, contentType string, data []byte) error {
	return m.Called(ctx, path, contentType, data).Error(0)
}

func (m *MockObjectStore) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockObjectStore) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

func (m *MockObjectStore) PathFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, "https://cdn.example.com/")
}

func (m *MockObjectStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUploadLimiter struct {
	mock.Mock
}

func (m *MockUploadLimiter) AllowUpload(ctx context.Context, ip, userID string) (bool, int, error) {
	args := m.Called(ctx, ip, userID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	ctx := ownerCtx("owner-1")

	t.Run("Should require a session", func(t *testing.T) {
		store := new(MockObjectStore)
		uc := usecase.NewUploadUsecase(store, nil, 0, nil)
		_, err := uc.UploadImage(context.Background(), &domain.UploadRequest{Filename: "a.png", Data: pngBytes(t, 4, 4)})
		assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should report 503 without a storage backend", func(t *testing.T) {
		uc := usecase.NewUploadUsecase(nil, nil, 0, nil)
		_, err := uc.UploadImage(ctx, &domain.UploadRequest{Filename: "a.png", Data: pngBytes(t, 4, 4)})
		assert.True(t, apperror.HasCode(err, http.StatusServiceUnavailable))
	})

	t.Run("Should reject non image content", func(t *testing.T) {
		store := new(MockObjectStore)
		uc := usecase.NewUploadUsecase(store, nil, 0, nil)
		_, err := uc.UploadImage(ctx, &domain.UploadRequest{Filename: "notes.png", Data: []byte("plain text pretending")})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

		_, err = uc.UploadImage(ctx, &domain.UploadRequest{Filename: "run.exe", Data: []byte("MZ")})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject oversized files", func(t *testing.T) {
		uc := usecase.NewUploadUsecase(new(MockObjectStore), nil, 16, nil)
		_, err := uc.UploadImage(ctx, &domain.UploadRequest{Filename: "a.png", Data: pngBytes(t, 32, 32)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smaller than")
	})

	t.Run("Should refuse when the limiter says no", func(t *testing.T) {
		limiter := new(MockUploadLimiter)
		limiter.On("AllowUpload", mock.Anything, "10.0.0.1", "owner-1").Return(false, 42, nil).Once()
		uc := usecase.NewUploadUsecase(new(MockObjectStore), limiter, 0, nil)
		_, err := uc.UploadImage(ctx, &domain.UploadRequest{Filename: "a.png", Data: pngBytes(t, 4, 4), ClientIP: "10.0.0.1"})
		assert.True(t, apperror.HasCode(err, http.StatusTooManyRequests))
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("Should compress, store and replace the old object", func(t *testing.T) {
		store := new(MockObjectStore)
		store.On("Upload", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "projects/") && strings.HasSuffix(p, ".jpg")
		}), "image/jpeg", mock.Anything).Return(nil).Once()
		store.On("Delete", mock.Anything, "projects/old.jpg").Return(nil).Once()

		limiter := new(MockUploadLimiter)
		limiter.On("AllowUpload", mock.Anything, mock.Anything, "owner-1").Return(true, 0, nil)

		uc := usecase.NewUploadUsecase(store, limiter, 0, nil)
		res, err := uc.UploadImage(ctx, &domain.UploadRequest{
			Filename: "Cover.PNG",
			Data:     pngBytes(t, 64, 48),
			Folder:   "../projects",
			OldURL:   "https://cdn.example.com/projects/old.jpg",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/projects/"))
		assert.Equal(t, "https://cdn.example.com/"+res.Path, res.URL)
		store.AssertExpectations(t)
	})
}
