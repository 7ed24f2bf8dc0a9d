package storage

import (
	"context"
	"mime/multipart"

	"Reel-Food-Backend/domain"
)

// AllowVideo lists the upload extensions accepted for reel videos.
var AllowVideo = []string{".mp4", ".mov", ".webm", ".mkv"}

type (
	// UploadAuthorizer issues short-lived signed credentials so a client
	// can push video bytes directly to object storage. The application
	// server never relays the payload.
	UploadAuthorizer interface {
		AuthorizeUpload(ctx context.Context) (domain.UploadCredentials, error)
	}

	// ObjectStorage is the server-side upload path used when a partner
	// posts the video as multipart form data instead of uploading it
	// directly.
	ObjectStorage interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, dir string, allowed ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}
)
