package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// maxImageSize caps uploads at 10 MB. Looks are photos, not video.
const maxImageSize = int64(10 * 1024 * 1024)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

// uuidRegex matches UUID v4 format: 8-4-4-4-12 lowercase hex with dashes.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// safeFilenameRegex allows alphanumeric, dots, hyphens, underscores, spaces, and parentheses.
var safeFilenameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._ ()-]{0,254}$`)

func validateUserID(id string) error {
	if !uuidRegex.MatchString(id) {
		return fmt.Errorf("invalid userId: must be a UUID (e.g., a1b2c3d4-e5f6-7890-abcd-ef1234567890)")
	}
	return nil
}

func validateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename is required")
	}
	if strings.Contains(name, "..") || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("filename contains invalid characters")
	}
	if !safeFilenameRegex.MatchString(name) {
		return fmt.Errorf("filename contains invalid characters; only alphanumeric, dots, hyphens, underscores, spaces, and parentheses allowed")
	}
	return nil
}

// GET /api/upload-url?userId=...&filename=...&contentType=...
// Returns a presigned S3 PUT URL so the browser can upload a look image
// directly to S3.
//
//   - userId must be a valid UUID
//   - filename is sanitized and validated against a safe character set
//   - contentType must be an allowed image type
//   - the presigned URL carries a Content-Length constraint to cap size
func handleUploadURL(w http.ResponseWriter, r *http.Request) {
	if uploads.Presigner == nil {
		httpError(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID := r.URL.Query().Get("userId")
	filename := r.URL.Query().Get("filename")
	contentType := r.URL.Query().Get("contentType")

	if userID == "" || filename == "" || contentType == "" {
		httpError(w, http.StatusBadRequest, "userId, filename, and contentType are required")
		return
	}

	if err := validateUserID(userID); err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename = filepath.Base(filename)
	if err := validateFilename(filename); err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !allowedContentTypes[contentType] {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("unsupported content type: %s", contentType))
		return
	}

	key := userID + "/" + filename

	result, err := uploads.Presigner.PresignPutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        &uploads.Bucket,
		Key:           &key,
		ContentType:   &contentType,
		ContentLength: aws.Int64(maxImageSize),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to generate presigned URL")
		httpError(w, http.StatusInternalServerError, "failed to generate upload URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"uploadUrl": result.URL,
		"key":       key,
	})
}
