// Package xerrors implements the error taxonomy and single-choke-point
// translator: every contract/RPC error funnels through Translate and
// comes out tagged with a stable Kind.
package xerrors

import "fmt"

// Kind is the stable, user-visible classification of an error.
type Kind string

const (
	KindConfigMissing    Kind = "CONFIG_MISSING"
	KindAuth             Kind = "AUTH"
	KindKeystoreMissing  Kind = "KEYSTORE_MISSING"
	KindKeystoreCorrupt  Kind = "KEYSTORE_CORRUPT"
	KindValidation       Kind = "VALIDATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindPermission       Kind = "PERMISSION"
	KindPolicy           Kind = "POLICY"
	KindFunds            Kind = "FUNDS"
	KindTx               Kind = "TX"
	KindIPFSNotFound     Kind = "IPFS_NOT_FOUND"
	KindIPFSUnreachable  Kind = "IPFS_UNREACHABLE"
	KindRPCUnreachable   Kind = "RPC_UNREACHABLE"
	KindBadRecord        Kind = "BAD_RECORD"
	KindUnknown          Kind = "UNKNOWN"
)

// Error is the typed error every core operation propagates upward.
// The command layer renders Kind and Message on one line (+ Hint, + the
// chain of Cause errors only when DEBUG is set).
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error directly, bypassing Translate. Core operations use
// this for pre-flight failures (validation, permission pre-checks) that
// never touch the chain/IPFS boundary.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithHint returns a copy of e with Hint set.
func (e *Error) WithHint(hint string) *Error {
	cp := *e
	cp.Hint = hint
	return &cp
}

// WithCause returns a copy of e with Cause set.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.Cause = cause
	return &cp
}

// As reports whether err is (or wraps) an *Error, writing it into target.
func As(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
