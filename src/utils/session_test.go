package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Run("MemberSession", func(t *testing.T) {
		token, err := GenerateSessionToken("64f000000000000000000001", "64f000000000000000000002")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseSessionToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "64f000000000000000000001", claims.MemberID)
		assert.Equal(t, "64f000000000000000000002", claims.GroupID)
		assert.NotEmpty(t, claims.ID)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("NoEmailSessionHasEmptyMemberID", func(t *testing.T) {
		token, err := GenerateSessionToken("", "64f000000000000000000002")
		assert.NoError(t, err)

		claims, err := ParseSessionToken(token)
		assert.NoError(t, err)
		assert.Empty(t, claims.MemberID)
		assert.Equal(t, "64f000000000000000000002", claims.GroupID)
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		t1, _ := GenerateSessionToken("m", "g")
		t2, _ := GenerateSessionToken("m", "g")
		c1, err1 := ParseSessionToken(t1)
		c2, err2 := ParseSessionToken(t2)
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.NotEqual(t, c1.ID, c2.ID)
	})
}

func TestParseSessionTokenRejects(t *testing.T) {
	t.Run("EmptyToken", func(t *testing.T) {
		_, err := ParseSessionToken("")
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseSessionToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("TamperedSignature", func(t *testing.T) {
		token, err := GenerateSessionToken("member", "group")
		assert.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = ParseSessionToken(tampered)
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateSessionToken("member", "group")
		assert.NoError(t, err)

		t.Setenv("JWT_SECRET", "a-different-secret")
		_, err = ParseSessionToken(token)
		assert.Error(t, err)
	})
}
