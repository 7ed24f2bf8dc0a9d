package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeUploadSignature(t *testing.T) {
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ik := &ImageKit{
		publicKey:  "public_abc",
		privateKey: "private_xyz",
		uploadURL:  "https://upload.imagekit.io/api/v1/files/upload",
		tokenTTL:   30 * time.Minute,
		now:        func() time.Time { return fixed },
	}

	creds, err := ik.AuthorizeUpload(context.Background())
	require.NoError(t, err)

	require.Equal(t, "public_abc", creds.PublicKey)
	require.Equal(t, fixed.Add(30*time.Minute).Unix(), creds.Expire)
	_, err = uuid.Parse(creds.Token)
	require.NoError(t, err)

	// The client-side uploader verifies nothing; ImageKit recomputes this
	// exact MAC server-side, so it must match byte for byte.
	mac := hmac.New(sha1.New, []byte("private_xyz"))
	mac.Write([]byte(creds.Token + strconv.FormatInt(creds.Expire, 10)))
	require.Equal(t, hex.EncodeToString(mac.Sum(nil)), creds.Signature)
}

func TestAuthorizeUploadTokensAreUnique(t *testing.T) {
	ik := &ImageKit{privateKey: "private_xyz", tokenTTL: time.Minute, now: time.Now}

	first, err := ik.AuthorizeUpload(context.Background())
	require.NoError(t, err)
	second, err := ik.AuthorizeUpload(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)
	require.NotEqual(t, first.Signature, second.Signature)
}
