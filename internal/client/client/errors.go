package client

import (
	"errors"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// RejectedError is a business-rule rejection: the backend answered
// success:false. Message is the server's text, possibly empty.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "rejected"
	}
	return "rejected: " + e.Message
}

// OutcomeOf classifies the error of a submission. A nil error succeeds, a
// RejectedError surfaces the server message and anything else becomes a
// failure carrying failureMessage.
func OutcomeOf(err error, failureMessage string) models.Outcome {
	if err == nil {
		return models.Succeeded("")
	}
	var rej *RejectedError
	if errors.As(err, &rej) {
		return models.Rejected(rej.Message)
	}
	return models.Failed(failureMessage)
}
