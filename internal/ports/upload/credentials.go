package upload

// UploadCredentials is the triple a browser needs to upload directly to the
// external image service, plus the public key it identifies itself with.
type UploadCredentials struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}
