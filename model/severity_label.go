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

// SeverityLabel is the normalized severity of a finding.
type SeverityLabel string

const (
	SeverityLabelInformational SeverityLabel = "INFORMATIONAL"
	SeverityLabelLow           SeverityLabel = "LOW"
	SeverityLabelMedium        SeverityLabel = "MEDIUM"
	SeverityLabelHigh          SeverityLabel = "HIGH"
	SeverityLabelCritical      SeverityLabel = "CRITICAL"
)

const severityLabelName = "SeverityLabel"

// SeverityLabelValues returns every SeverityLabel in declaration order.
func SeverityLabelValues() []SeverityLabel {
	return []SeverityLabel{
		SeverityLabelInformational,
		SeverityLabelLow,
		SeverityLabelMedium,
		SeverityLabelHigh,
		SeverityLabelCritical,
	}
}

// ParseSeverityLabel returns the SeverityLabel whose wire string is exactly s.
func ParseSeverityLabel(s string) (SeverityLabel, error) {
	switch v := SeverityLabel(s); v {
	case SeverityLabelInformational,
		SeverityLabelLow,
		SeverityLabelMedium,
		SeverityLabelHigh,
		SeverityLabelCritical:
		return v, nil
	}
	return "", enum.Reject(severityLabelName, s)
}

// MustParseSeverityLabel is like ParseSeverityLabel but panics on error.
func MustParseSeverityLabel(s string) SeverityLabel {
	v, err := ParseSeverityLabel(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s SeverityLabel) String() string { return string(s) }

// IsValid reports whether s is a declared value.
func (s SeverityLabel) IsValid() bool {
	_, err := ParseSeverityLabel(string(s))
	return err == nil
}

func (s SeverityLabel) MarshalText() ([]byte, error) {
	return enum.MarshalText(severityLabelName, s, s.IsValid())
}

func (s *SeverityLabel) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, s, ParseSeverityLabel)
}

func (s *SeverityLabel) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(severityLabelName, data, s, ParseSeverityLabel)
}
