package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	u := New()

	tests := []struct {
		in   string
		want string
	}{
		{"Portfolio Chatbot", "portfolio-chatbot"},
		{"  AI / NLP  Toolkit!  ", "ai-nlp-toolkit"},
		{"Already-slugged", "already-slugged"},
		{"___", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Slugify(tt.in))
	}
}

func TestGenerateOTP(t *testing.T) {
	u := New()

	otp, err := u.GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	a, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	b, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
