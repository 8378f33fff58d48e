package idgenerator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID tags one status check so its log lines can be grouped.
func GenerateRunID() string {
	return GenerateRunIDAt(time.Now())
}

func GenerateRunIDAt(now time.Time) string {
	randomString := generateRandomString(5)
	id := uuid.New().String()
	timestamp := now.Format("20060102150405")

	return strings.Join([]string{randomString, id, timestamp}, "-")
}

func generateRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	runes := []rune(charset)
	b := make([]rune, length)
	for i := range b {
		b[i] = runes[rand.Intn(len(runes))]
	}
	return string(b)
}
