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

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/securityhub/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedSet erases an enumeration's type so one table can cover them all.
type closedSet struct {
	name   string
	wire   []string
	parse  func(string) (string, error)
	format func(string) string
}

type wireEnum interface {
	~string
	MarshalText() ([]byte, error)
}

func erase[T wireEnum](name string, values []T, parse func(string) (T, error)) closedSet {
	wire := make([]string, len(values))
	for i, v := range values {
		wire[i] = string(v)
	}
	return closedSet{
		name: name,
		wire: wire,
		parse: func(s string) (string, error) {
			v, err := parse(s)
			return string(v), err
		},
		format: func(s string) string {
			b, err := T(s).MarshalText()
			if err != nil {
				return ""
			}
			return string(b)
		},
	}
}

func allSets() []closedSet {
	return []closedSet{
		erase("AccessKeyStatus", AccessKeyStatusValues(), ParseAccessKeyStatus),
		erase("Partition", PartitionValues(), ParsePartition),
		erase("ThreatIndicatorCategory", ThreatIndicatorCategoryValues(), ParseThreatIndicatorCategory),
		erase("ThreatIndicatorType", ThreatIndicatorTypeValues(), ParseThreatIndicatorType),
		erase("SeverityLabel", SeverityLabelValues(), ParseSeverityLabel),
		erase("RecordState", RecordStateValues(), ParseRecordState),
		erase("WorkflowStatus", WorkflowStatusValues(), ParseWorkflowStatus),
	}
}

func TestEnums_RoundTrip(t *testing.T) {
	for _, set := range allSets() {
		t.Run(set.name, func(t *testing.T) {
			require.NotEmpty(t, set.wire)
			for _, w := range set.wire {
				got, err := set.parse(w)
				require.NoError(t, err)
				assert.Equal(t, w, got)
				assert.Equal(t, w, set.format(got))
			}
		})
	}
}

func TestEnums_Bijection(t *testing.T) {
	for _, set := range allSets() {
		t.Run(set.name, func(t *testing.T) {
			seen := make(map[string]bool, len(set.wire))
			for _, w := range set.wire {
				require.False(t, seen[w], "duplicate wire string %q", w)
				seen[w] = true
			}
		})
	}
}

func TestEnums_RejectEmpty(t *testing.T) {
	for _, set := range allSets() {
		t.Run(set.name, func(t *testing.T) {
			_, err := set.parse("")
			require.ErrorIs(t, err, enum.ErrEmptyInput)

			_, err = enum.ParsePtr(set.name, nil, set.parse)
			require.ErrorIs(t, err, enum.ErrEmptyInput)
		})
	}
}

func TestEnums_RejectUnknown(t *testing.T) {
	for _, set := range allSets() {
		t.Run(set.name, func(t *testing.T) {
			_, err := set.parse("bogus")
			require.ErrorIs(t, err, enum.ErrUnknownVariant)
			assert.Contains(t, err.Error(), "bogus")

			var pe *enum.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, set.name, pe.Enum)
			assert.Equal(t, "bogus", pe.Input)
		})
	}
}

func TestEnums_ExactMatch(t *testing.T) {
	for _, set := range allSets() {
		t.Run(set.name, func(t *testing.T) {
			for _, w := range set.wire {
				for _, variant := range []string{
					strings.ToLower(w), strings.ToUpper(w), " " + w, w + " ", w + "\n",
				} {
					if variant == w {
						continue
					}
					_, err := set.parse(variant)
					require.ErrorIs(t, err, enum.ErrUnknownVariant, "input %q", variant)
				}
			}
		})
	}
}

func TestAccessKeyStatus_CaseSensitive(t *testing.T) {
	got, err := ParseAccessKeyStatus("Active")
	require.NoError(t, err)
	assert.Equal(t, AccessKeyStatusActive, got)

	_, err = ParseAccessKeyStatus("active")
	require.ErrorIs(t, err, enum.ErrUnknownVariant)
}

func TestPartition_AwsCn(t *testing.T) {
	got, err := ParsePartition("aws-cn")
	require.NoError(t, err)
	assert.Equal(t, PartitionAwsCn, got)
	assert.Equal(t, "aws-cn", PartitionAwsCn.String())
}

func TestThreatIndicatorCategory_Wire(t *testing.T) {
	assert.Equal(t, []ThreatIndicatorCategory{
		"BACKDOOR", "CARD_STEALER", "COMMAND_AND_CONTROL", "DROP_SITE", "EXPLOIT_SITE", "KEYLOGGER",
	}, ThreatIndicatorCategoryValues())
}

func TestValues_ReturnsFreshSlice(t *testing.T) {
	v := PartitionValues()
	v[0] = "mutated"
	assert.Equal(t, PartitionAws, PartitionValues()[0])
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, SeverityLabelCritical, MustParseSeverityLabel("CRITICAL"))
	assert.Panics(t, func() { MustParseRecordState("archived") })
}

func TestIsValid(t *testing.T) {
	assert.True(t, WorkflowStatusResolved.IsValid())
	assert.False(t, WorkflowStatus("").IsValid())
	assert.False(t, WorkflowStatus("resolved").IsValid())
}

type indicator struct {
	Type     ThreatIndicatorType      `json:"Type"`
	Category *ThreatIndicatorCategory `json:"Category,omitempty"`
	Status   AccessKeyStatus          `json:"Status"`
}

func TestJSON_RoundTrip(t *testing.T) {
	cat := ThreatIndicatorCategoryDropSite
	in := indicator{Type: ThreatIndicatorTypeIpv4Address, Category: &cat, Status: AccessKeyStatusInactive}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"IPV4_ADDRESS","Category":"DROP_SITE","Status":"Inactive"}`, string(b))

	var out indicator
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestJSON_OptionalNull(t *testing.T) {
	var out indicator
	require.NoError(t, json.Unmarshal([]byte(`{"Type":"URL","Category":null,"Status":"Active"}`), &out))
	assert.Nil(t, out.Category)
}

func TestJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"null required", `{"Type":null,"Status":"Active"}`, enum.ErrEmptyInput},
		{"empty", `{"Type":"","Status":"Active"}`, enum.ErrEmptyInput},
		{"unknown", `{"Type":"IPV5_ADDRESS","Status":"Active"}`, enum.ErrUnknownVariant},
		{"wrong case", `{"Type":"URL","Status":"ACTIVE"}`, enum.ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out indicator
			err := json.Unmarshal([]byte(tt.body), &out)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJSON_MarshalInvalid(t *testing.T) {
	_, err := json.Marshal(indicator{Type: "nope", Status: AccessKeyStatusActive})
	require.ErrorIs(t, err, enum.ErrUnknownVariant)

	_, err = json.Marshal(indicator{Type: ThreatIndicatorTypeURL})
	require.ErrorIs(t, err, enum.ErrEmptyInput)
}

func TestParse_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, set := range allSets() {
				for _, w := range set.wire {
					if _, err := set.parse(w); err != nil {
						t.Error(err)
					}
				}
			}
		}()
	}
	wg.Wait()
}
