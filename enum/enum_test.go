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
	"errors"
	"strings"
	"testing"

	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	red  color = "RED"
	blue color = "BLUE"
)

func parseColor(s string) (color, error) {
	switch c := color(s); c {
	case red, blue:
		return c, nil
	}
	return "", Reject("Color", s)
}

func TestReject(t *testing.T) {
	err := Reject("Color", "")
	assert.Equal(t, KindEmpty, err.Kind)
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.False(t, errors.Is(err, ErrUnknownVariant))

	err = Reject("Color", "GREEN")
	assert.Equal(t, KindUnknownVariant, err.Kind)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.False(t, errors.Is(err, ErrEmptyInput))
	assert.Equal(t, "GREEN", err.Input)
}

func TestParseError_Message(t *testing.T) {
	for _, in := range []string{"bogus", "  spaced  ", `quo"te`, "ünïcode"} {
		err := Unknown("Color", in)
		assert.True(t, strings.Contains(err.Error(), in), "message %q must contain %q", err.Error(), in)
		assert.True(t, strings.HasPrefix(err.Error(), "Color: "))
	}
	assert.Equal(t, "Color: value cannot be null or empty", Empty("Color").Error())
}

func TestParseError_Classification(t *testing.T) {
	e := Empty("Color")
	assert.Equal(t, code.Missing, e.ErrorClass())
	assert.Equal(t, reason.EnumEmpty, e.ErrorReason())
	require.Len(t, e.ErrorDetails(), 1)
	assert.NotContains(t, e.ErrorDetails()[0].Info, "input")

	u := Unknown("Color", "GREEN")
	assert.Equal(t, code.Invalid, u.ErrorClass())
	assert.Equal(t, reason.EnumUnknown, u.ErrorReason())
	d := u.ErrorDetails()[0]
	assert.Equal(t, "unknown_variant", d.Reason)
	assert.Equal(t, "GREEN", d.Info["input"])
	assert.Equal(t, "Color", d.Info["enum"])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "unknown_variant", KindUnknownVariant.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestParsePtr(t *testing.T) {
	_, err := ParsePtr("Color", nil, parseColor)
	require.ErrorIs(t, err, ErrEmptyInput)

	s := "BLUE"
	got, err := ParsePtr("Color", &s, parseColor)
	require.NoError(t, err)
	assert.Equal(t, blue, got)
}

func TestMarshalText(t *testing.T) {
	b, err := MarshalText("Color", red, true)
	require.NoError(t, err)
	assert.Equal(t, "RED", string(b))

	_, err = MarshalText("Color", color(""), false)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = MarshalText("Color", color("red"), false)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestUnmarshal(t *testing.T) {
	c := blue
	require.ErrorIs(t, UnmarshalText([]byte("PINK"), &c, parseColor), ErrUnknownVariant)
	assert.Equal(t, blue, c, "dst untouched on error")

	require.NoError(t, UnmarshalJSON("Color", []byte(`"RED"`), &c, parseColor))
	assert.Equal(t, red, c)

	require.ErrorIs(t, UnmarshalJSON("Color", []byte(" null "), &c, parseColor), ErrEmptyInput)
	require.ErrorIs(t, UnmarshalJSON("Color", []byte(`""`), &c, parseColor), ErrEmptyInput)

	err := UnmarshalJSON("Color", []byte(`42`), &c, parseColor)
	require.Error(t, err)
	var pe *ParseError
	assert.False(t, errors.As(err, &pe))
	assert.Equal(t, red, c)
}
