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

package reason

import (
	"errors"
	"regexp"
	"strings"
)

// Reason is a canonical, dot-separated refinement of a code: one to four
// lowercase segments.
type Reason string

// Length bounds for a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// Each segment starts with a letter; at most four segments. The empty
// string is handled before the regexp runs.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned for reasons that do not match the
	// segment grammar.
	ErrReasonInvalidFormat = errors.New("securityhub: invalid reason format")

	// ErrReasonInvalidLength is returned for reasons outside MinLength..MaxLength.
	ErrReasonInvalidLength = errors.New("securityhub: invalid reason length")
)

// Empty means no reason was provided.
var Empty Reason = ""

// Reasons attached by this module.
const (
	InvalidInput     Reason = "securityhub.input.invalid"
	LimitExceeded    Reason = "securityhub.limit.exceeded"
	AccessDenied     Reason = "securityhub.access.denied"
	InvalidAccess    Reason = "securityhub.access.invalid"
	ResourceConflict Reason = "securityhub.resource.conflict"
	ResourceNotFound Reason = "securityhub.resource.not_found"
	InternalFailure  Reason = "securityhub.internal"
	Unmodeled        Reason = "securityhub.unmodeled"
	MalformedBody    Reason = "securityhub.response.malformed"

	EnumEmpty   Reason = "enum.variant.empty"
	EnumUnknown Reason = "enum.variant.unknown"
)

// Normalize trims, lowercases, maps '/' to '.' and '-' to '_'.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

func (r Reason) String() string { return string(r) }

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
