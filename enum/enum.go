/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
)

// Kind tells the two lookup failures apart.
type Kind uint8

const (
	// KindEmpty: no usable input.
	KindEmpty Kind = iota + 1
	// KindUnknownVariant: input outside the closed set.
	KindUnknownVariant
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindUnknownVariant:
		return "unknown_variant"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var (
	// ErrEmptyInput matches every *ParseError of KindEmpty.
	ErrEmptyInput = errors.New("securityhub: enum value cannot be null or empty")

	// ErrUnknownVariant matches every *ParseError of KindUnknownVariant.
	ErrUnknownVariant = errors.New("securityhub: unknown enum value")
)

// ParseError reports a failed reverse lookup.
type ParseError struct {
	// Enum is the type name, e.g. "Partition".
	Enum string
	// Input is the rejected string, exactly as received.
	Input string
	Kind  Kind
}

var (
	_ apis.ClassifiedError = (*ParseError)(nil)
	_ apis.ReasonedError   = (*ParseError)(nil)
	_ apis.DetailedError   = (*ParseError)(nil)
)

// Empty returns the KindEmpty error for the named enum.
func Empty(enum string) *ParseError {
	return &ParseError{Enum: enum, Kind: KindEmpty}
}

// Unknown returns the KindUnknownVariant error for input.
func Unknown(enum, input string) *ParseError {
	return &ParseError{Enum: enum, Input: input, Kind: KindUnknownVariant}
}

// Reject picks Empty or Unknown depending on input. Parse functions call it
// once the switch over declared values has fallen through.
func Reject(enum, input string) *ParseError {
	if input == "" {
		return Empty(enum)
	}
	return Unknown(enum, input)
}

func (e *ParseError) Error() string {
	if e.Kind == KindEmpty {
		return fmt.Sprintf("%s: value cannot be null or empty", e.Enum)
	}
	return fmt.Sprintf(`%s: cannot create enum from "%s" value`, e.Enum, e.Input)
}

// Is matches ErrEmptyInput or ErrUnknownVariant by kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrEmptyInput:
		return e.Kind == KindEmpty
	case ErrUnknownVariant:
		return e.Kind == KindUnknownVariant
	}
	return false
}

// ErrorClass is code.Missing for empty input and code.Invalid otherwise.
func (e *ParseError) ErrorClass() code.Code {
	if e.Kind == KindEmpty {
		return code.Missing
	}
	return code.Invalid
}

func (e *ParseError) ErrorReason() reason.Reason {
	if e.Kind == KindEmpty {
		return reason.EnumEmpty
	}
	return reason.EnumUnknown
}

func (e *ParseError) ErrorDetails() []apis.Detail {
	d := apis.Detail{Type: "enum", Reason: e.Kind.String(), Info: map[string]string{"enum": e.Enum}}
	if e.Kind == KindUnknownVariant {
		d.Info["input"] = e.Input
	}
	return []apis.Detail{d}
}

// ParsePtr treats a nil s as empty input and otherwise defers to parse.
func ParsePtr[T any](enum string, s *string, parse func(string) (T, error)) (T, error) {
	if s == nil {
		var zero T
		return zero, Empty(enum)
	}
	return parse(*s)
}

// MarshalText returns v's wire form, or the lookup error when v is not a
// declared value.
func MarshalText[T ~string](enum string, v T, valid bool) ([]byte, error) {
	if !valid {
		return nil, Reject(enum, string(v))
	}
	return []byte(v), nil
}

// UnmarshalText parses text into dst. dst is left untouched on error.
func UnmarshalText[T any](text []byte, dst *T, parse func(string) (T, error)) error {
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// UnmarshalJSON decodes a JSON string into dst. The null literal is
// rejected as empty input: optional members belong in pointer fields,
// which encoding/json sets to nil without calling this.
func UnmarshalJSON[T any](enum string, data []byte, dst *T, parse func(string) (T, error)) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return Empty(enum)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", enum, err)
	}
	return UnmarshalText([]byte(s), dst, parse)
}
