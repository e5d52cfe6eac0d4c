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

// ThreatIndicatorType is the kind of value a threat intelligence indicator
// carries.
type ThreatIndicatorType string

const (
	ThreatIndicatorTypeDomain       ThreatIndicatorType = "DOMAIN"
	ThreatIndicatorTypeEmailAddress ThreatIndicatorType = "EMAIL_ADDRESS"
	ThreatIndicatorTypeHashMd5      ThreatIndicatorType = "HASH_MD5"
	ThreatIndicatorTypeHashSha1     ThreatIndicatorType = "HASH_SHA1"
	ThreatIndicatorTypeHashSha256   ThreatIndicatorType = "HASH_SHA256"
	ThreatIndicatorTypeHashSha512   ThreatIndicatorType = "HASH_SHA512"
	ThreatIndicatorTypeIpv4Address  ThreatIndicatorType = "IPV4_ADDRESS"
	ThreatIndicatorTypeIpv6Address  ThreatIndicatorType = "IPV6_ADDRESS"
	ThreatIndicatorTypeMutex        ThreatIndicatorType = "MUTEX"
	ThreatIndicatorTypeProcess      ThreatIndicatorType = "PROCESS"
	ThreatIndicatorTypeURL          ThreatIndicatorType = "URL"
)

const threatIndicatorTypeName = "ThreatIndicatorType"

// ThreatIndicatorTypeValues returns every ThreatIndicatorType in declaration order.
func ThreatIndicatorTypeValues() []ThreatIndicatorType {
	return []ThreatIndicatorType{
		ThreatIndicatorTypeDomain,
		ThreatIndicatorTypeEmailAddress,
		ThreatIndicatorTypeHashMd5,
		ThreatIndicatorTypeHashSha1,
		ThreatIndicatorTypeHashSha256,
		ThreatIndicatorTypeHashSha512,
		ThreatIndicatorTypeIpv4Address,
		ThreatIndicatorTypeIpv6Address,
		ThreatIndicatorTypeMutex,
		ThreatIndicatorTypeProcess,
		ThreatIndicatorTypeURL,
	}
}

// ParseThreatIndicatorType returns the ThreatIndicatorType whose wire string is exactly s.
func ParseThreatIndicatorType(s string) (ThreatIndicatorType, error) {
	switch v := ThreatIndicatorType(s); v {
	case ThreatIndicatorTypeDomain,
		ThreatIndicatorTypeEmailAddress,
		ThreatIndicatorTypeHashMd5,
		ThreatIndicatorTypeHashSha1,
		ThreatIndicatorTypeHashSha256,
		ThreatIndicatorTypeHashSha512,
		ThreatIndicatorTypeIpv4Address,
		ThreatIndicatorTypeIpv6Address,
		ThreatIndicatorTypeMutex,
		ThreatIndicatorTypeProcess,
		ThreatIndicatorTypeURL:
		return v, nil
	}
	return "", enum.Reject(threatIndicatorTypeName, s)
}

// MustParseThreatIndicatorType is like ParseThreatIndicatorType but panics on error.
func MustParseThreatIndicatorType(s string) ThreatIndicatorType {
	v, err := ParseThreatIndicatorType(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (t ThreatIndicatorType) String() string { return string(t) }

// IsValid reports whether t is a declared value.
func (t ThreatIndicatorType) IsValid() bool {
	_, err := ParseThreatIndicatorType(string(t))
	return err == nil
}

func (t ThreatIndicatorType) MarshalText() ([]byte, error) {
	return enum.MarshalText(threatIndicatorTypeName, t, t.IsValid())
}

func (t *ThreatIndicatorType) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, t, ParseThreatIndicatorType)
}

func (t *ThreatIndicatorType) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(threatIndicatorTypeName, data, t, ParseThreatIndicatorType)
}
