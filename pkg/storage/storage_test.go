package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupabaseStore(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotAuth, gotType = r.Header.Get("Authorization"), r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		if r.URL.Path == "/storage/v1/object/project-images/uploads/fail.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Duplicate"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewSupabaseStore(srv.URL+"/", "service-key", "project-images")
	require.NoError(t, err)

	t.Run("Should post the object with the service key", func(t *testing.T) {
		err := store.Upload(context.Background(), "uploads/a.jpg", "image/jpeg", []byte("jpeg"))
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/storage/v1/object/project-images/uploads/a.jpg", gotPath)
		assert.Equal(t, "Bearer service-key", gotAuth)
		assert.Equal(t, "image/jpeg", gotType)
		assert.Equal(t, []byte("jpeg"), gotBody)
	})

	t.Run("Should surface non-2xx responses", func(t *testing.T) {
		err := store.Upload(context.Background(), "uploads/fail.jpg", "image/jpeg", []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Duplicate")
	})

	t.Run("Should round-trip public URLs", func(t *testing.T) {
		url := store.PublicURL("uploads/a.jpg")
		assert.Equal(t, srv.URL+"/storage/v1/object/public/project-images/uploads/a.jpg", url)

		path, ok := store.PathFromURL(url)
		assert.True(t, ok)
		assert.Equal(t, "uploads/a.jpg", path)

		_, ok = store.PathFromURL("https://elsewhere.example.com/a.jpg")
		assert.False(t, ok)
	})

	t.Run("Should issue DELETE for removals", func(t *testing.T) {
		require.NoError(t, store.Delete(context.Background(), "uploads/a.jpg"))
		assert.Equal(t, http.MethodDelete, gotMethod)
	})

	t.Run("Should require credentials", func(t *testing.T) {
		_, err := NewSupabaseStore("", "", "b")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, in)
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *mockS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, in)
	return &s3.HeadBucketOutput{}, args.Error(0)
}

func TestS3Store(t *testing.T) {
	api := new(mockS3)
	store := &S3Store{client: api, bucket: "media", publicBase: "https://cdn.example.com"}

	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Bucket == "media" && *in.Key == "uploads/x.jpg" && *in.ContentType == "image/jpeg"
	})).Return(nil).Once()
	api.On("DeleteObject", mock.Anything, mock.Anything).Return(errors.New("denied")).Once()

	require.NoError(t, store.Upload(context.Background(), "uploads/x.jpg", "image/jpeg", []byte("x")))
	assert.Error(t, store.Delete(context.Background(), "uploads/x.jpg"))
	assert.Equal(t, "https://cdn.example.com/uploads/x.jpg", store.PublicURL("uploads/x.jpg"))

	path, ok := store.PathFromURL("https://cdn.example.com/uploads/x.jpg")
	assert.True(t, ok)
	assert.Equal(t, "uploads/x.jpg", path)

	api.AssertExpectations(t)
}

func TestCompressImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2400, 600))
	for x := 0; x < 2400; x++ {
		src.Set(x, 0, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := CompressImage(buf.Bytes(), MaxImageDimension, JPEGQuality)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())

	_, err = CompressImage([]byte("not an image"), MaxImageDimension, JPEGQuality)
	assert.Error(t, err)
}

func TestCleanFolder(t *testing.T) {
	assert.Equal(t, "uploads", CleanFolder("", "uploads"))
	assert.Equal(t, "projects", CleanFolder("/projects/", "uploads"))
	assert.Equal(t, "etcpasswd", CleanFolder("../etc/passwd", "uploads"))
	assert.Equal(t, "uploads", CleanFolder("../..", "uploads"))
}
