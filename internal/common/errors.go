package common

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidState       = errors.New("invalid oauth state")
	ErrTokenExchange      = errors.New("token exchange failed")
	ErrNoInstagramAccount = errors.New("no instagram business account linked to any page")
	ErrNoAccountConnected = errors.New("no instagram account connected")
	ErrNotFound           = errors.New("not found")
	ErrExternalAPI        = errors.New("external api error")
	ErrReplyDispatch      = errors.New("reply dispatch failed")

	ErrInvalidReply       = errors.New("reply text is required")
	ErrInvalidStatus      = errors.New("invalid comment status")
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrMalformedPayload   = errors.New("malformed webhook payload")

	// returned by repositories when a unique key already holds the record
	ErrDuplicate = errors.New("duplicate record")
)

// HTTPStatus maps an error kind to the status code returned at the HTTP boundary.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrInvalidReply),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrMalformedPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrVerificationFailed):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoAccountConnected):
		return http.StatusNotFound
	case errors.Is(err, ErrNoInstagramAccount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrTokenExchange),
		errors.Is(err, ErrReplyDispatch),
		errors.Is(err, ErrExternalAPI):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// ErrorCode is the short machine-readable kind used in JSON bodies and redirect URLs.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrTokenExchange):
		return "token_exchange_failed"
	case errors.Is(err, ErrNoInstagramAccount):
		return "no_instagram_account"
	case errors.Is(err, ErrNoAccountConnected):
		return "no_account_connected"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrReplyDispatch):
		return "reply_dispatch_failed"
	case errors.Is(err, ErrExternalAPI):
		return "external_api_error"
	case errors.Is(err, ErrInvalidReply), errors.Is(err, ErrInvalidStatus):
		return "invalid_request"
	case errors.Is(err, ErrVerificationFailed):
		return "forbidden"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	}
	return "internal_error"
}
