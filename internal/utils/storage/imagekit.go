package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/utils"

	"github.com/google/uuid"
)

// ImageKit issues upload credentials in the ImageKit authentication
// parameter format: signature = hex(HMAC-SHA1(privateKey, token+expire)).
type ImageKit struct {
	publicKey  string
	privateKey string
	uploadURL  string
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewImageKit() *ImageKit {
	return &ImageKit{
		publicKey:  utils.GetConfig("IMAGEKIT_PUBLIC_KEY"),
		privateKey: utils.GetConfig("IMAGEKIT_PRIVATE_KEY"),
		uploadURL:  utils.GetConfig("IMAGEKIT_UPLOAD_URL"),
		tokenTTL:   30 * time.Minute,
		now:        time.Now,
	}
}

func (ik *ImageKit) AuthorizeUpload(_ context.Context) (domain.UploadCredentials, error) {
	token := uuid.New().String()
	expire := ik.now().Add(ik.tokenTTL).Unix()

	mac := hmac.New(sha1.New, []byte(ik.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	signature := hex.EncodeToString(mac.Sum(nil))

	return domain.UploadCredentials{
		Signature: signature,
		Token:     token,
		Expire:    expire,
		PublicKey: ik.publicKey,
		UploadURL: ik.uploadURL,
	}, nil
}
