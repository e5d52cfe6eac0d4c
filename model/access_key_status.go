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

// AccessKeyStatus is the status of an IAM access key attached to a finding
// resource.
type AccessKeyStatus string

const (
	AccessKeyStatusActive   AccessKeyStatus = "Active"
	AccessKeyStatusInactive AccessKeyStatus = "Inactive"
)

const accessKeyStatusName = "AccessKeyStatus"

// AccessKeyStatusValues returns every AccessKeyStatus in declaration order.
func AccessKeyStatusValues() []AccessKeyStatus {
	return []AccessKeyStatus{AccessKeyStatusActive, AccessKeyStatusInactive}
}

// ParseAccessKeyStatus returns the AccessKeyStatus whose wire string is exactly s.
func ParseAccessKeyStatus(s string) (AccessKeyStatus, error) {
	switch v := AccessKeyStatus(s); v {
	case AccessKeyStatusActive, AccessKeyStatusInactive:
		return v, nil
	}
	return "", enum.Reject(accessKeyStatusName, s)
}

// MustParseAccessKeyStatus is like ParseAccessKeyStatus but panics on error.
func MustParseAccessKeyStatus(s string) AccessKeyStatus {
	v, err := ParseAccessKeyStatus(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (a AccessKeyStatus) String() string { return string(a) }

// IsValid reports whether a is a declared value.
func (a AccessKeyStatus) IsValid() bool {
	_, err := ParseAccessKeyStatus(string(a))
	return err == nil
}

func (a AccessKeyStatus) MarshalText() ([]byte, error) {
	return enum.MarshalText(accessKeyStatusName, a, a.IsValid())
}

func (a *AccessKeyStatus) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, a, ParseAccessKeyStatus)
}

func (a *AccessKeyStatus) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(accessKeyStatusName, data, a, ParseAccessKeyStatus)
}
