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

package code

import (
	"errors"
	"regexp"
	"strings"
)

// Code is a canonical classification code such as "invalid" or
// "quota_exceeded".
//
// Raw strings coming from configuration or from the wire must go through
// Parse before they are used as a Code.
type Code string

// Length bounds for a canonical code.
const (
	MinLength = 3
	MaxLength = 64
)

// codeFmt must stay in sync with MinLength and MaxLength:
// one leading letter followed by 2..63 letters, digits or underscores.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value is not a canonical code.
var ErrCodeInvalid = errors.New("securityhub: invalid code")

// Empty is the zero code. Errors carrying it are classified as Internal by
// the transport adapters.
var Empty Code = ""

// Parse normalizes s and returns it as a canonical Code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// Normalize trims, lowercases and turns dashes into underscores.
// The result still has to be validated.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports whether c is canonical.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// OrInternal returns c, or Internal when c is not canonical.
func (c Code) OrInternal() Code {
	if Validate(c) != nil {
		return Internal
	}
	return c
}

func (c Code) String() string { return string(c) }
