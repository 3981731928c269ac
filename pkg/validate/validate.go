// Package validate holds the client-side checks run before a request is
// sent. Messages are Vietnamese because they are shown to clinic staff as-is.
package validate

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// MinPasswordLength is the shortest password the backend accepts.
const MinPasswordLength = 6

var phonePattern = regexp.MustCompile(`^(84|0[3|5|7|8|9])(\d{8})$`)

const (
	MsgNameRequired     = "Vui lòng nhập họ tên"
	MsgEmailRequired    = "Vui lòng nhập email"
	MsgEmailInvalid     = "Email không hợp lệ"
	MsgPhoneRequired    = "Vui lòng nhập số điện thoại"
	MsgPhoneInvalid     = "Số điện thoại không hợp lệ"
	MsgPasswordRequired = "Vui lòng nhập mật khẩu"
	MsgPasswordTooShort = "Mật khẩu phải có ít nhất 6 ký tự"
)

// Phone checks a Vietnamese mobile number (e.g. 0912345678, 8491234567).
func Phone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return apperrors.NewValidationError(MsgPhoneRequired)
	}
	if !phonePattern.MatchString(phone) {
		return apperrors.NewValidationError(MsgPhoneInvalid)
	}
	return nil
}

// Email checks a bare address; display-name forms are rejected.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.NewValidationError(MsgEmailRequired)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return apperrors.NewValidationError(MsgEmailInvalid)
	}
	return nil
}

// Password enforces the minimum length, counted in characters.
func Password(password string) error {
	if password == "" {
		return apperrors.NewValidationError(MsgPasswordRequired)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperrors.NewValidationError(MsgPasswordTooShort)
	}
	return nil
}

// Name requires a non-blank value.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError(MsgNameRequired)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
