package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr string
	}{
		{phone: "0912345678"},
		{phone: "0312345678"},
		{phone: "0512345678"},
		{phone: "0712345678"},
		{phone: "0812345678"},
		{phone: "8491234567"},
		{phone: "", wantErr: MsgPhoneRequired},
		{phone: "0212345678", wantErr: MsgPhoneInvalid},
		{phone: "091234567", wantErr: MsgPhoneInvalid},
		{phone: "09123456789", wantErr: MsgPhoneInvalid},
		{phone: "+84912345678", wantErr: MsgPhoneInvalid},
		{phone: "09a2345678", wantErr: MsgPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := Phone(tt.phone)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantErr, apperrors.DisplayMessage(err))
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("abcdef"))
	assert.NoError(t, Password("mậtkhẩu"))
	assert.Equal(t, MsgPasswordTooShort, apperrors.DisplayMessage(Password("12345")))
	assert.Equal(t, MsgPasswordRequired, apperrors.DisplayMessage(Password("")))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("lan.nguyen@hivclinic.vn"))
	assert.Error(t, Email("lan.nguyen"))
	assert.Error(t, Email("Lan <lan@hivclinic.vn>"))
	assert.Error(t, Email("lan@localhost"))
	assert.Equal(t, MsgEmailRequired, apperrors.DisplayMessage(Email(" ")))
}

func TestFirst(t *testing.T) {
	assert.NoError(t, First(nil, nil))
	err := First(nil, Name(""), Phone("1"))
	assert.Equal(t, MsgNameRequired, apperrors.DisplayMessage(err))
}
