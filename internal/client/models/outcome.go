package models

// OutcomeKind classifies the result of a user-initiated submission.
type OutcomeKind int

const (
	// OutcomeSucceeded means the backend accepted the request.
	OutcomeSucceeded OutcomeKind = iota
	// OutcomeInvalid means client-side validation blocked the request
	// before anything was sent. FieldErrors holds one message per field.
	OutcomeInvalid
	// OutcomeRejected means the backend answered success:false. Message is
	// the server's text and is shown inline next to the form.
	OutcomeRejected
	// OutcomeFailed means a transport or parse failure. Message is a generic
	// transient notification.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is returned by every submission: login, signup, logout, create,
// update and delete.
type Outcome struct {
	Kind        OutcomeKind
	Message     string
	FieldErrors map[string]string
}

// OK reports whether the submission succeeded.
func (o Outcome) OK() bool { return o.Kind == OutcomeSucceeded }

// Succeeded builds a successful outcome carrying an optional server message.
func Succeeded(message string) Outcome {
	return Outcome{Kind: OutcomeSucceeded, Message: message}
}

// Invalid builds an outcome for a submission blocked by validation.
func Invalid(fieldErrors map[string]string) Outcome {
	return Outcome{Kind: OutcomeInvalid, FieldErrors: fieldErrors}
}

// Rejected builds an outcome for a success:false answer.
func Rejected(message string) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: message}
}

// Failed builds an outcome for a transport failure.
func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeFailed, Message: message}
}
