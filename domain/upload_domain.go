package domain

type (
	// UploadCredentials is the short-lived signed token set a client uses
	// to upload video bytes directly to object storage, bypassing this
	// server entirely.
	UploadCredentials struct {
		Signature string `json:"signature"`
		Token     string `json:"token"`
		Expire    int64  `json:"expire"`
		PublicKey string `json:"publicKey"`
		UploadURL string `json:"uploadUrl,omitempty"`
	}
)
