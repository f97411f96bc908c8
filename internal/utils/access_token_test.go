package utils_test

import (
	"testing"

	"github.com/moneymap/moneymap-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndDecodeToken(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := utils.NewAccessTokenUtil()

	token, err := util.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := util.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", payload["sub"])
	assert.NotEmpty(t, payload["jti"])
}

func TestIssueProducesUniqueTokens(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := utils.NewAccessTokenUtil()

	first, err := util.Issue("user-123")
	require.NoError(t, err)
	second, err := util.Issue("user-123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecodeTokenWrongKey(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := utils.NewAccessTokenUtil()
	token, err := util.Issue("user-123")
	require.NoError(t, err)

	t.Setenv("SECRET_JWT", "another-secret")

	_, err = util.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeGarbageToken(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := utils.NewAccessTokenUtil()

	_, err := util.DecodeToken("not-a-token")
	assert.Error(t, err)
}
