// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ct

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors that report a caller mistake, such
// as passing two tree heads in the wrong order, rather than bad log data.
var ErrInvalidArgument = errors.New("invalid argument")

// EncodingError indicates that a byte string which should hold a structured
// value (a wire structure, a signature envelope, a DER signature or a
// certificate) is not well formed.
type EncodingError struct {
	Msg string
	Err error
}

func (e *EncodingError) Error() string { return formatError("encoding error", e.Msg, e.Err) }

// Unwrap returns the underlying cause, if any.
func (e *EncodingError) Unwrap() error { return e.Err }

// SignatureError indicates that a signature decoded correctly but does not
// verify against the signed data and key.
type SignatureError struct {
	Msg string
	Err error
}

func (e *SignatureError) Error() string { return formatError("signature error", e.Msg, e.Err) }

// Unwrap returns the underlying cause, if any.
func (e *SignatureError) Unwrap() error { return e.Err }

// ConsistencyError indicates that two tree heads, or a consistency proof
// between them, contradict the log being append-only.
type ConsistencyError struct {
	Msg string
	Err error
}

func (e *ConsistencyError) Error() string { return formatError("consistency error", e.Msg, e.Err) }

// Unwrap returns the underlying cause, if any.
func (e *ConsistencyError) Unwrap() error { return e.Err }

// IncompleteChainError indicates that a certificate chain lacks a
// certificate needed to rebuild the data a log signed.
type IncompleteChainError struct {
	Msg string
}

func (e *IncompleteChainError) Error() string {
	return formatError("incomplete chain", e.Msg, nil)
}

// KeyError indicates that public key material could not be loaded, or uses
// an algorithm or parameters that cannot verify CT signatures.
type KeyError struct {
	Msg string
	Err error
}

func (e *KeyError) Error() string { return formatError("key error", e.Msg, e.Err) }

// Unwrap returns the underlying cause, if any.
func (e *KeyError) Unwrap() error { return e.Err }

func formatError(kind, msg string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s: %s", kind, msg)
	}
	return fmt.Sprintf("%s: %s: %v", kind, msg, err)
}

func encodingErrorf(err error, format string, args ...interface{}) error {
	return &EncodingError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// ErrorKind returns a short stable name for the kind of err: "encoding",
// "signature", "consistency", "incomplete_chain", "key" or
// "invalid_argument". It returns "internal" for any other non-nil error and
// "" for nil.
func ErrorKind(err error) string {
	var (
		encErr   *EncodingError
		sigErr   *SignatureError
		consErr  *ConsistencyError
		chainErr *IncompleteChainError
		keyErr   *KeyError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &encErr):
		return "encoding"
	case errors.As(err, &sigErr):
		return "signature"
	case errors.As(err, &consErr):
		return "consistency"
	case errors.As(err, &chainErr):
		return "incomplete_chain"
	case errors.As(err, &keyErr):
		return "key"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "internal"
	}
}
