package xerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/rpc"
)

// codeError is go-ethereum's own rpc.Error shape: any error that
// additionally exposes a JSON-RPC error code.
type codeError = rpc.Error

// dataError is go-ethereum's rpc.DataError shape: an error carrying the
// raw ABI-encoded revert data alongside its message.
type dataError interface {
	error
	ErrorData() any
}

// Translate is the single choke point every contract/RPC error funnels
// through. It classifies err by, in order: (1) the
// standard Error(string) revert reason, (2) a custom error decoded from
// contractABI (nil is fine if the call site has none loaded), then a known
// JSON-RPC error code, (3) nested provider error messages found by
// unwrapping, innermost first, (4) the top-level message.
func Translate(err error, contractABI *abi.ABI) *Error {
	if err == nil {
		return nil
	}

	if reason, ok := extractRevertReason(err); ok {
		if r, matched := matchRevert(reason); matched {
			return &Error{Kind: r.kind, Message: r.template, Cause: err}
		}
		return &Error{Kind: KindUnknown, Message: cleanMessage(reason), Cause: err}
	}

	if contractABI != nil {
		if name, args, ok := extractCustomError(err, contractABI); ok {
			msg := fmt.Sprintf("%s%s", name, args)
			if r, matched := matchRevert(name + " " + args); matched {
				return &Error{Kind: r.kind, Message: r.template, Cause: err}
			}
			return &Error{Kind: KindUnknown, Message: cleanMessage(msg), Cause: err}
		}
	}

	if ce, ok := asCodeError(err); ok {
		if r, matched := matchRPCCode(ce.ErrorCode()); matched {
			return &Error{Kind: r.kind, Message: r.template, Cause: err}
		}
	}

	var chain []error
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		msg := chain[i].Error()
		if r, matched := matchRevert(msg); matched {
			return &Error{Kind: r.kind, Message: r.template, Cause: err}
		}
		if r, matched := matchRPCSubstring(msg); matched {
			if r.template == "" {
				continue // generic marker (e.g. "execution reverted") with no specific reason; keep unwrapping
			}
			return &Error{Kind: r.kind, Message: r.template, Cause: err}
		}
	}

	return &Error{Kind: KindUnknown, Message: cleanMessage(err.Error()), Cause: err}
}

func asCodeError(err error) (codeError, bool) {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if ce, ok := cur.(codeError); ok {
			return ce, true
		}
	}
	return nil, false
}

// extractRevertReason decodes the standard Error(string) revert encoding
// from a dataError's raw payload, if present.
func extractRevertReason(err error) (string, bool) {
	de, ok := asDataError(err)
	if !ok {
		return "", false
	}
	raw := de.ErrorData()
	data, ok := revertDataBytes(raw)
	if !ok {
		return "", false
	}
	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return "", false
	}
	return reason, true
}

func asDataError(err error) (dataError, bool) {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if de, ok := cur.(dataError); ok {
			return de, true
		}
	}
	return nil, false
}

// revertDataBytes normalizes the polymorphic ErrorData() payload (hex
// string, []byte, or rpc.rawMessage-shaped value) into raw bytes.
func revertDataBytes(raw any) ([]byte, bool) {
	switch v := raw.(type) {
	case []byte:
		return v, true
	case string:
		s := strings.TrimPrefix(v, "0x")
		if s == "" {
			return nil, false
		}
		b := make([]byte, len(s)/2)
		if _, err := fmt.Sscanf(s, "%x", &b); err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}

// extractCustomError attempts to decode raw ABI custom error data (name +
// args) using the errors declared on contractABI.
func extractCustomError(err error, contractABI *abi.ABI) (name string, argsRepr string, ok bool) {
	de, ok := asDataError(err)
	if !ok {
		return "", "", false
	}
	raw := de.ErrorData()
	data, ok := revertDataBytes(raw)
	if !ok || len(data) < 4 {
		return "", "", false
	}
	selector := data[:4]
	for errName, abiErr := range contractABI.Errors {
		if string(abiErr.ID[:4]) != string(selector) {
			continue
		}
		values, unpackErr := abiErr.Inputs.Unpack(data[4:])
		if unpackErr != nil {
			return errName, "", true
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%v", v)
		}
		return errName, "(" + strings.Join(parts, ", ") + ")", true
	}
	return "", "", false
}
