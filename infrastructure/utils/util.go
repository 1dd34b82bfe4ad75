package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"trending-board/infrastructure/logger"

	"github.com/golang-jwt/jwt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.Korean)

// HumanizeCount renders a raw view-count string in Korean short units:
// >= 1억 → one decimal in 억, >= 1만 → one decimal in 만, otherwise a grouped
// integer. Unparsable or empty input counts as zero; this never fails.
func HumanizeCount(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		n = 0
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 100_000_000:
		return fmt.Sprintf("%.1f억회", float64(n)/100_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%.1f만회", float64(n)/10_000)
	default:
		return countPrinter.Sprintf("%d회", n)
	}
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateToken signs the payload as an HS256 JWT with the given secret.
func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}
