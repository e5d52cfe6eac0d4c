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

// Package reason refines a classification code with a dot-separated
// identifier naming where a failure was detected, for example:
//
//   - "securityhub.input.invalid"
//   - "securityhub.limit.exceeded"
//   - "enum.variant.unknown"
//
// The empty reason is valid and means "no refinement".
package reason
