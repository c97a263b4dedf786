package uploadapp

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid"

	uploadPort "inkwell/internal/ports/upload"
)

// credentialTTL is how long an issued upload credential stays redeemable.
// Expiry is enforced by the image service, not by this system.
const credentialTTL = 30 * time.Minute

// UploadService issues time-boxed signed credentials for direct
// browser-to-image-service uploads. The image bytes never pass through this
// process.
type UploadService struct {
	privateKey string
	publicKey  string
	now        func() time.Time
}

func NewUploadService(privateKey, publicKey string) *UploadService {
	return &UploadService{
		privateKey: privateKey,
		publicKey:  publicKey,
		now:        time.Now,
	}
}

// Credentials computes a fresh token, expiry and signature per the image
// service's scheme. A credential may be issued and never redeemed; the two
// phases of the upload are not transactional.
func (s *UploadService) Credentials(ctx context.Context) (*uploadPort.UploadCredentials, error) {
	if s.privateKey == "" || s.publicKey == "" {
		return nil, errors.New("image service keypair is not configured")
	}

	token, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate upload token: %w", err)
	}

	expire := s.now().Add(credentialTTL).Unix()

	return &uploadPort.UploadCredentials{
		Token:     token.String(),
		Expire:    expire,
		Signature: Sign(s.privateKey, token.String(), expire),
		PublicKey: s.publicKey,
	}, nil
}

// Sign binds token and expiry under the private key:
// hex(hmac-sha1(privateKey, token + expire)).
func Sign(privateKey, token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
