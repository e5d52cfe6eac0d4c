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

package apis

// ViewProvider is implemented by errors that can render themselves for the
// wire.
type ViewProvider interface {
	error

	ErrorView() ErrorView
}

// ErrorView is the client-facing snapshot of an error.
type ErrorView struct {
	// Type is the AWS error code, sent as "__type".
	Type string `json:"__type,omitempty"`

	// Code is the short code member of the exception shape, if set.
	Code string `json:"Code,omitempty"`

	// Class is the classification code.
	Class string `json:"class"`

	// Reason refines Class and may be empty.
	Reason string `json:"reason,omitempty"`

	Message string `json:"message,omitempty"`

	RequestID string `json:"requestId,omitempty"`

	Details []Detail `json:"details,omitempty"`
}
