package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/security"
	"portfolio-backend/pkg/storage"

	"github.com/google/uuid"
)

const (
	DefaultUploadFolder = "uploads"
	DefaultMaxUpload    = 5 << 20
)

// UploadLimiter throttles uploads per client IP and per owner.
type UploadLimiter interface {
	AllowUpload(ctx context.Context, ip, userID string) (bool, int, error)
}

type uploadUsecase struct {
	store    storage.ObjectStore
	limiter  UploadLimiter
	maxBytes int64
	secLog   *security.SecurityLogger
	now      func() time.Time
}

// NewUploadUsecase wires image uploads. store may be nil when no backend is
// configured; uploads then fail with 503.
func NewUploadUsecase(store storage.ObjectStore, limiter UploadLimiter, maxBytes int64, secLog *security.SecurityLogger) domain.UploadUsecase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUpload
	}
	if secLog == nil {
		secLog = security.DefaultLogger()
	}
	return &uploadUsecase{store: store, limiter: limiter, maxBytes: maxBytes, secLog: secLog, now: time.Now}
}

func (u *uploadUsecase) UploadImage(ctx context.Context, req *domain.UploadRequest) (*domain.UploadResult, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if u.store == nil {
		return nil, apperror.Unavailable("File storage is not configured", storage.ErrNotConfigured)
	}

	if len(req.Data) == 0 {
		return nil, apperror.BadRequest("No file uploaded")
	}
	if int64(len(req.Data)) > u.maxBytes {
		u.secLog.LogUploadRejected(ctx, ownerID, req.ClientIP, "too_large")
		return nil, apperror.BadRequest(fmt.Sprintf("File must be smaller than %d MB", u.maxBytes>>20))
	}

	detected := http.DetectContentType(req.Data)
	if res := security.ValidateImage(req.Filename, req.Data, detected); !res.Valid {
		u.secLog.LogUploadRejected(ctx, ownerID, req.ClientIP, res.Error)
		return nil, apperror.BadRequest("Only image files are allowed: " + res.Error)
	}

	if u.limiter != nil {
		allowed, retryAfter, err := u.limiter.AllowUpload(ctx, req.ClientIP, ownerID)
		if err != nil && allowed {
			logger.Log.Warn("Upload limiter degraded", "error", err)
		}
		if !allowed {
			u.secLog.LogUploadRejected(ctx, ownerID, req.ClientIP, "rate_limited")
			return nil, apperror.TooManyRequests(fmt.Sprintf("Too many uploads, retry in %d seconds", retryAfter))
		}
	}

	data, contentType, ext := req.Data, detected, strings.ToLower(path.Ext(req.Filename))
	compressed, err := storage.CompressImage(req.Data, storage.MaxImageDimension, storage.JPEGQuality)
	if err != nil {
		logger.Log.Warn("Image compression failed, storing original", "error", err)
	} else {
		data, contentType, ext = compressed, "image/jpeg", ".jpg"
	}

	folder := storage.CleanFolder(req.Folder, DefaultUploadFolder)
	objectPath := fmt.Sprintf("%s/%s_%d%s", folder, uuid.NewString(), u.now().Unix(), ext)

	if err := u.store.Upload(ctx, objectPath, contentType, data); err != nil {
		return nil, err
	}

	if req.OldURL != "" {
		if oldPath, ok := u.store.PathFromURL(req.OldURL); ok && oldPath != objectPath {
			if err := u.store.Delete(ctx, oldPath); err != nil {
				logger.Log.Warn("Failed to delete replaced upload", "path", oldPath, "error", err)
			}
		}
	}

	return &domain.UploadResult{Path: objectPath, URL: u.store.PublicURL(objectPath), Size: len(data)}, nil
}
