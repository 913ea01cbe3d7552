package token

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken — токен для сброса пароля, 20 байт в hex
// как в остальной части системы SpinX
func GenerateResetToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
