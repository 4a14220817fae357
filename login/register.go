package login

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

// Register creates a new account. The store is not touched: registering does
// not log the user in, the login screen does that afterwards.
func (f *Flow) Register(ctx context.Context, username, password string) error {
	status, body, err := f.postJSON(ctx, "/register", registerRequest{Username: username, Password: password})
	if err != nil {
		return errors.Wrap(ErrServiceUnavailable, err.Error())
	}
	if status >= 200 && status < 300 {
		f.log.Info().Str("username", username).Msg("registration accepted")
		return nil
	}

	msg := responseMessage(body, status)
	if status == http.StatusConflict {
		return errors.Wrap(ErrUsernameTaken, msg)
	}
	return errors.Wrap(ErrServiceUnavailable, msg)
}

// VerifyUsername checks that an account exists before a password reset.
func (f *Flow) VerifyUsername(ctx context.Context, username string) error {
	status, body, err := f.getText(ctx, "/verify-username/"+url.PathEscape(username))
	if err != nil {
		return errors.Wrap(ErrServiceUnavailable, err.Error())
	}
	if status >= 200 && status < 300 {
		return nil
	}

	msg := responseMessage(body, status)
	if status == http.StatusNotFound {
		return errors.Wrap(ErrUnknownUsername, msg)
	}
	return errors.Wrap(ErrServiceUnavailable, msg)
}

// ResetPassword sets a new password for the given username.
func (f *Flow) ResetPassword(ctx context.Context, username, newPassword string) error {
	status, body, err := f.postJSON(ctx, "/reset-password", resetPasswordRequest{Username: username, NewPassword: newPassword})
	if err != nil {
		return errors.Wrap(ErrServiceUnavailable, err.Error())
	}
	if status >= 200 && status < 300 {
		f.log.Info().Str("username", username).Msg("password reset")
		return nil
	}

	msg := responseMessage(body, status)
	if status == http.StatusNotFound {
		return errors.Wrap(ErrUnknownUsername, msg)
	}
	return errors.Wrap(ErrServiceUnavailable, msg)
}
