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

// ThreatIndicatorCategory classifies a threat intelligence indicator by what
// the observed infrastructure is used for.
type ThreatIndicatorCategory string

const (
	ThreatIndicatorCategoryBackdoor          ThreatIndicatorCategory = "BACKDOOR"
	ThreatIndicatorCategoryCardStealer       ThreatIndicatorCategory = "CARD_STEALER"
	ThreatIndicatorCategoryCommandAndControl ThreatIndicatorCategory = "COMMAND_AND_CONTROL"
	ThreatIndicatorCategoryDropSite          ThreatIndicatorCategory = "DROP_SITE"
	ThreatIndicatorCategoryExploitSite       ThreatIndicatorCategory = "EXPLOIT_SITE"
	ThreatIndicatorCategoryKeylogger         ThreatIndicatorCategory = "KEYLOGGER"
)

const threatIndicatorCategoryName = "ThreatIndicatorCategory"

// ThreatIndicatorCategoryValues returns every ThreatIndicatorCategory in declaration order.
func ThreatIndicatorCategoryValues() []ThreatIndicatorCategory {
	return []ThreatIndicatorCategory{
		ThreatIndicatorCategoryBackdoor,
		ThreatIndicatorCategoryCardStealer,
		ThreatIndicatorCategoryCommandAndControl,
		ThreatIndicatorCategoryDropSite,
		ThreatIndicatorCategoryExploitSite,
		ThreatIndicatorCategoryKeylogger,
	}
}

// ParseThreatIndicatorCategory returns the ThreatIndicatorCategory whose wire string is exactly s.
func ParseThreatIndicatorCategory(s string) (ThreatIndicatorCategory, error) {
	switch v := ThreatIndicatorCategory(s); v {
	case ThreatIndicatorCategoryBackdoor,
		ThreatIndicatorCategoryCardStealer,
		ThreatIndicatorCategoryCommandAndControl,
		ThreatIndicatorCategoryDropSite,
		ThreatIndicatorCategoryExploitSite,
		ThreatIndicatorCategoryKeylogger:
		return v, nil
	}
	return "", enum.Reject(threatIndicatorCategoryName, s)
}

// MustParseThreatIndicatorCategory is like ParseThreatIndicatorCategory but panics on error.
func MustParseThreatIndicatorCategory(s string) ThreatIndicatorCategory {
	v, err := ParseThreatIndicatorCategory(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (t ThreatIndicatorCategory) String() string { return string(t) }

// IsValid reports whether t is a declared value.
func (t ThreatIndicatorCategory) IsValid() bool {
	_, err := ParseThreatIndicatorCategory(string(t))
	return err == nil
}

func (t ThreatIndicatorCategory) MarshalText() ([]byte, error) {
	return enum.MarshalText(threatIndicatorCategoryName, t, t.IsValid())
}

func (t *ThreatIndicatorCategory) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, t, ParseThreatIndicatorCategory)
}

func (t *ThreatIndicatorCategory) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(threatIndicatorCategoryName, data, t, ParseThreatIndicatorCategory)
}
