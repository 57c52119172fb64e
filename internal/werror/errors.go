// Package werror implements the error taxonomy described in spec.md §7:
// transport, body-parse, body-update, element, and application errors,
// each carrying the offending id/field so callers can report it.
package werror

import (
	"errors"
	"fmt"
)

// Code classifies an error into one of the taxonomy buckets from spec.md §7.
type Code string

const (
	CodeTransport   Code = "TRANSPORT"
	CodeBodyParse   Code = "BODY_PARSE"
	CodeBodyUpdate  Code = "BODY_UPDATE"
	CodeElement     Code = "ELEMENT"
	CodeApplication Code = "APPLICATION"
)

// Error is a structured error carrying a taxonomy Code, an optional
// element/field id, and the wrapped cause.
type Error struct {
	Code    Code
	Message string
	ID      string // offending element id or field/event name, if any
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.ID != "" {
		msg = fmt.Sprintf("%s (id=%s)", msg, e.ID)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by Code, the way xraph-go-utils/errs.Error matches by string code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

func newErr(code Code, id, message string, cause error) *Error {
	return &Error{Code: code, Message: message, ID: id, Err: cause}
}

// Transport wraps a network failure, non-2xx response, or malformed base URL.
func Transport(message string, cause error) *Error {
	return newErr(CodeTransport, "", message, cause)
}

// BodyParse wraps a fatal Body-construction error (missing SSR form,
// missing required input, invalid HTML).
func BodyParse(message string, cause error) *Error {
	return newErr(CodeBodyParse, "", message, cause)
}

// BodyUpdate wraps a malformed-XML or missing-attribute update error.
func BodyUpdate(message string, cause error) *Error {
	return newErr(CodeBodyUpdate, "", message, cause)
}

// InvalidID reports that no DOM node exists for the given element id.
func InvalidID(id string) *Error {
	return newErr(CodeElement, id, "no element with this id", nil)
}

// InvalidElement reports that a node exists at id but its control type
// (`ct` attribute) does not match the requested kind.
func InvalidElement(id, wantKind, gotCT string) *Error {
	return newErr(CodeElement, id, fmt.Sprintf("expected kind %s, got ct=%q", wantKind, gotCT), nil)
}

// InvalidContent reports that an element's content is present but has an
// unsupported shape for the requested conversion.
func InvalidContent(id, reason string) *Error {
	return newErr(CodeElement, id, "invalid content: "+reason, nil)
}

// NoSuchData reports that a requested lsdata field is not populated on
// this element instance.
func NoSuchData(id, field string) *Error {
	return newErr(CodeElement, id, "no such data field: "+field, nil)
}

// NoSuchEvent reports that a requested event is not declared in this
// element's lsevents table.
func NoSuchEvent(id, event string) *Error {
	return newErr(CodeElement, id, "no such event: "+event, nil)
}

// InvalidLSData reports that lsdata/lsevents decoding failed; the element
// remains constructible with default field values (spec.md §7).
func InvalidLSData(id string, cause error) *Error {
	return newErr(CodeElement, id, "lsdata/lsevents decode failed, using defaults", cause)
}

// Application wraps an application-layer assertion failure (e.g. a
// sentinel "no data" row in a table). Not raised by the core itself.
func Application(message string, cause error) *Error {
	return newErr(CodeApplication, "", message, cause)
}

// Is is a convenience re-export of errors.Is for callers that don't want
// to import both packages.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is a convenience re-export of errors.As.
func As(err error, target any) bool { return errors.As(err, target) }
