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

package model

import "dirpx.dev/securityhub/enum"

// RecordState tells whether a finding is still reported by its provider.
type RecordState string

const (
	RecordStateActive   RecordState = "ACTIVE"
	RecordStateArchived RecordState = "ARCHIVED"
)

const recordStateName = "RecordState"

// RecordStateValues returns every RecordState in declaration order.
func RecordStateValues() []RecordState {
	return []RecordState{RecordStateActive, RecordStateArchived}
}

// ParseRecordState returns the RecordState whose wire string is exactly s.
func ParseRecordState(s string) (RecordState, error) {
	switch v := RecordState(s); v {
	case RecordStateActive, RecordStateArchived:
		return v, nil
	}
	return "", enum.Reject(recordStateName, s)
}

// MustParseRecordState is like ParseRecordState but panics on error.
func MustParseRecordState(s string) RecordState {
	v, err := ParseRecordState(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (r RecordState) String() string { return string(r) }

// IsValid reports whether r is a declared value.
func (r RecordState) IsValid() bool {
	_, err := ParseRecordState(string(r))
	return err == nil
}

func (r RecordState) MarshalText() ([]byte, error) {
	return enum.MarshalText(recordStateName, r, r.IsValid())
}

func (r *RecordState) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, r, ParseRecordState)
}

func (r *RecordState) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(recordStateName, data, r, ParseRecordState)
}
