package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCode(t *testing.T) {
	ch, err := Mock{}.RequestCode("  Kwame ", "kwame@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Kwame", ch.Name)
	assert.Equal(t, "kwame@example.com", ch.Contact)
	assert.Contains(t, ch.Hint, "1234")
}

func TestRequestCode_RequiresFields(t *testing.T) {
	tests := []struct {
		name, contact, field string
	}{
		{"", "k@example.com", "name"},
		{"Kwame", "   ", "contact"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := Mock{}.RequestCode(tt.name, tt.contact)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestVerifyCode(t *testing.T) {
	ch, err := Mock{}.RequestCode("Ama", "0241234567")
	require.NoError(t, err)

	id, err := Mock{}.VerifyCode(ch, "1234")
	require.NoError(t, err)
	assert.Equal(t, Identity{Name: "Ama", Contact: "0241234567"}, id)

	_, err = Mock{}.VerifyCode(ch, "0000")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = Mock{}.VerifyCode(ch, "")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestLogin(t *testing.T) {
	id, err := Mock{}.Login("ama@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", id.Contact)

	_, err = Mock{}.Login("ama@example.com", "")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Mock{}.Login("", "secret")
	assert.ErrorIs(t, err, ErrMissingField)
}
