package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("changeme123")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme123", hashed)

	assert.True(t, VerifyPassword(hashed, "changeme123"))
	assert.False(t, VerifyPassword(hashed, "changeme124"))
}

func TestGenerateTempPassword(t *testing.T) {
	first, err := GenerateTempPassword(12)
	require.NoError(t, err)
	assert.Len(t, first, 12)

	second, err := GenerateTempPassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// 長度不合法時退回預設長度
	fallback, err := GenerateTempPassword(0)
	require.NoError(t, err)
	assert.Len(t, fallback, 12)
}
