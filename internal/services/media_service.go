package services

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

const ImageUploadExpiry = 15 * time.Minute

// ObjectPresigner signs direct-to-bucket uploads.
type ObjectPresigner interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}

type s3Presigner struct {
	bucket string
	client *s3.PresignClient
}

// NewS3Presigner returns nil when no bucket is configured.
func NewS3Presigner(ctx context.Context, bucket, region string) (ObjectPresigner, error) {
	if bucket == "" {
		utils.Logger.Warn("[Media] S3_BUCKET is empty; image uploads are disabled")
		return nil, nil
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &s3Presigner{bucket: bucket, client: s3.NewPresignClient(s3.NewFromConfig(cfg))}, nil
}

func (p *s3Presigner) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

type MediaService struct {
	presigner ObjectPresigner
	props     *PropertyService
	now       func() time.Time
}

func NewMediaService(presigner ObjectPresigner, props *PropertyService) *MediaService {
	return &MediaService{presigner: presigner, props: props, now: time.Now}
}

// PresignImageUpload authorizes the caller against the listing, signs an
// upload URL and records the object key on the listing.
func (s *MediaService) PresignImageUpload(ctx context.Context, actor Actor, propertyID uuid.UUID, req dtos.ImageUploadRequest) (*dtos.ImageUploadResponse, error) {
	if s.presigner == nil {
		return nil, utils.NewAppError(http.StatusServiceUnavailable, utils.ErrCodeExternalServiceFailure, "Image uploads are not configured", utils.ErrExternalServiceFailure)
	}
	if _, err := s.props.authorizeEdit(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	key := imageKey(propertyID, req.FileName)
	url, err := s.presigner.PresignPut(ctx, key, req.ContentType, ImageUploadExpiry)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "Failed to sign upload", err)
	}
	if err := s.props.repo.AppendImage(ctx, propertyID, key); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to record image", err)
	}
	return &dtos.ImageUploadResponse{
		UploadURL: url,
		Key:       key,
		ExpiresAt: s.now().Add(ImageUploadExpiry),
	}, nil
}

// imageKey is properties/<id>/<uuid><ext>; the client file name only
// contributes its extension.
func imageKey(propertyID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(fileName)))
	if len(ext) > 8 {
		ext = ""
	}
	return fmt.Sprintf("properties/%s/%s%s", propertyID, uuid.NewString(), ext)
}
