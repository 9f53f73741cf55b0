package errors

import (
	"fmt"
	"net/http"
)

// Error carries the dotted call-site namespace, an i18n message code and
// the underlying cause. HTTP status defaults to 500 until Code is called.
type Error struct {
	namespace  string
	messageKey string
	cause      error
	statusCode int
}

func New(namespace, messageKey string, cause error) *Error {
	return &Error{
		namespace:  namespace,
		messageKey: messageKey,
		cause:      cause,
		statusCode: http.StatusInternalServerError,
	}
}

func (e *Error) Code(status int) *Error {
	e.statusCode = status
	return e
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.namespace, e.messageKey)
	}
	return fmt.Sprintf("%s: %s: %s", e.namespace, e.messageKey, e.cause.Error())
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Status() int { return e.statusCode }

func (e *Error) Message() string { return e.messageKey }

func (e *Error) Namespace() string { return e.namespace }
