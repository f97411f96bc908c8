package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

// AccessTokenUtil issues and decodes the opaque session tokens handed out
// at login. Tokens are JWE objects encrypted with a key derived from
// SECRET_JWT; the random jti makes every login's token unique.
type AccessTokenUtil struct{}

func NewAccessTokenUtil() *AccessTokenUtil {
	return &AccessTokenUtil{}
}

const tokenLifetime = 30 * 24 * time.Hour

func (b *AccessTokenUtil) Issue(subject string) (string, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SECRET_JWT")))
	if err != nil {
		return "", err
	}

	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", err
	}

	now := time.Now()
	payload, err := json.Marshal(map[string]interface{}{
		"sub": subject,
		"jti": hex.EncodeToString(jti),
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	})
	if err != nil {
		return "", err
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: encryptionKey},
		nil,
	)
	if err != nil {
		return "", err
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return object.CompactSerialize()
}

func (b *AccessTokenUtil) DecodeToken(token string) (map[string]interface{}, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SECRET_JWT")))
	if err != nil {
		return nil, err
	}

	payload, err := decodeToken(token, encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func getDerivedEncryptionKey(keyMaterial []byte) ([]byte, error) {
	info := []byte("MoneyMap Generated Encryption Key")
	h := hkdf.New(sha256.New, keyMaterial, nil, info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}) error {
	now := time.Now().Unix()

	if exp, ok := payload["exp"].(float64); ok {
		if now > int64(exp) {
			return errors.New("token expired")
		}
	}

	if iat, ok := payload["iat"].(float64); ok {
		if now < int64(iat) {
			return errors.New("token not valid yet")
		}
	}

	return nil
}
