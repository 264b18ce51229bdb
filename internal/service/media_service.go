package service

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// uploadAuthValidity is how long issued upload credentials stay usable.
const uploadAuthValidity = 30 * time.Minute

// UploadAuthParams are the client-upload credentials ImageKit expects:
// signature = HMAC-SHA1(privateKey, token + expire).
type UploadAuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// MediaService issues credentials for direct browser uploads to the image
// service.
type MediaService interface {
	UploadAuth() UploadAuthParams
}

type mediaService struct {
	privateKey []byte
	now        func() time.Time
}

// NewMediaService creates a media service signing with the given private key.
func NewMediaService(privateKey string) MediaService {
	return &mediaService{
		privateKey: []byte(privateKey),
		now:        time.Now,
	}
}

// UploadAuth returns a fresh token, expiry, and signature.
func (s *mediaService) UploadAuth() UploadAuthParams {
	token := uuid.New().String()
	expire := s.now().Add(uploadAuthValidity).Unix()

	mac := hmac.New(sha1.New, s.privateKey)
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return UploadAuthParams{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}
