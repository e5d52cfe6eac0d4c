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

// WorkflowStatus tracks investigation progress on a finding.
type WorkflowStatus string

const (
	WorkflowStatusNew        WorkflowStatus = "NEW"        // not reviewed yet
	WorkflowStatusNotified   WorkflowStatus = "NOTIFIED"   // resource owner was told
	WorkflowStatusResolved   WorkflowStatus = "RESOLVED"   // reviewed and remediated
	WorkflowStatusSuppressed WorkflowStatus = "SUPPRESSED" // reviewed, no action needed
)

const workflowStatusName = "WorkflowStatus"

// WorkflowStatusValues returns every WorkflowStatus in declaration order.
func WorkflowStatusValues() []WorkflowStatus {
	return []WorkflowStatus{
		WorkflowStatusNew,
		WorkflowStatusNotified,
		WorkflowStatusResolved,
		WorkflowStatusSuppressed,
	}
}

// ParseWorkflowStatus returns the WorkflowStatus whose wire string is exactly s.
func ParseWorkflowStatus(s string) (WorkflowStatus, error) {
	switch v := WorkflowStatus(s); v {
	case WorkflowStatusNew,
		WorkflowStatusNotified,
		WorkflowStatusResolved,
		WorkflowStatusSuppressed:
		return v, nil
	}
	return "", enum.Reject(workflowStatusName, s)
}

// MustParseWorkflowStatus is like ParseWorkflowStatus but panics on error.
func MustParseWorkflowStatus(s string) WorkflowStatus {
	v, err := ParseWorkflowStatus(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (w WorkflowStatus) String() string { return string(w) }

// IsValid reports whether w is a declared value.
func (w WorkflowStatus) IsValid() bool {
	_, err := ParseWorkflowStatus(string(w))
	return err == nil
}

func (w WorkflowStatus) MarshalText() ([]byte, error) {
	return enum.MarshalText(workflowStatusName, w, w.IsValid())
}

func (w *WorkflowStatus) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, w, ParseWorkflowStatus)
}

func (w *WorkflowStatus) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(workflowStatusName, data, w, ParseWorkflowStatus)
}
