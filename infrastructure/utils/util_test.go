package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trending-board/infrastructure/utils"
)

func TestHumanizeCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty input counts as zero", "", "0회"},
		{"garbage input counts as zero", "abc", "0회"},
		{"small count grouped", "999", "999회"},
		{"grouped thousands", "1234", "1,234회"},
		{"just below ten thousand", "9999", "9,999회"},
		{"ten thousand boundary", "10000", "1.0만회"},
		{"ten thousands", "15000", "1.5만회"},
		{"view count from api", "12345", "1.2만회"},
		{"just below hundred million", "99999999", "10000.0만회"},
		{"hundred million boundary", "100000000", "1.0억회"},
		{"hundred millions", "250000000", "2.5억회"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.HumanizeCount(tt.raw))
		})
	}
}

func TestGenerateToken(t *testing.T) {
	token, err := utils.GenerateToken(map[string]interface{}{"username": "admin"}, "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
