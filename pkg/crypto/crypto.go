package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Credentials are stored as AES-256-CBC ciphertext in the form
// "<ivHex>:<cipherHex>", a random 16-byte IV per value.

// KeyFromHex decodes the process-wide symmetric key. The key must be
// 32 bytes (64 hex characters).
func KeyFromHex(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("KeyFromHex decode error: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("KeyFromHex: expected 32-byte key, got %d bytes", len(key))
	}
	return key, nil
}

func EncryptString(plain string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("EncryptString new cipher error: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("EncryptString reader error: %w", err)
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return fmt.Sprintf("%s:%s", hex.EncodeToString(iv), hex.EncodeToString(ciphertext)), nil
}

func DecryptString(enc string, key []byte) (string, error) {
	if enc == "" {
		return "", fmt.Errorf("DecryptString empty string")
	}

	parts := strings.SplitN(enc, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("DecryptString: malformed ciphertext, expected <ivHex>:<cipherHex>")
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("DecryptString iv decode error: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("DecryptString: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("DecryptString cipher decode error: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("DecryptString: ciphertext length %d is not a block multiple", len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("DecryptString new cipher error: %w", err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("DecryptString unpad error: %w", err)
	}

	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-padLen], nil
}
