package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// GenerateRandomString returns n characters from an unambiguous upper-case alphabet.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("failed to read random bytes")
		}
		b[i] = codeAlphabet[idx.Int64()]
	}
	return string(b)
}
