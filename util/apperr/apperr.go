// Package apperr carries the error classification the service tier reports
// to controllers: a missing or inaccessible entity, a business-rule
// violation, or a storage-level conflict. Everything else is internal.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

type kindedError struct {
	kind Kind
	msg  string
}

func (e kindedError) Error() string { return e.msg }
func (e kindedError) Kind() Kind    { return e.kind }

func NotFound(format string, args ...any) error {
	return kindedError{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return kindedError{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return kindedError{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification; unclassified errors are internal.
func KindOf(err error) Kind {
	var ke interface{ Kind() Kind }
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
