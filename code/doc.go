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

// Package code defines the classification codes attached to every
// securityhub error.
//
// A code answers "what class of failure is this?" independently of the
// AWS error code carried by an exception ("InvalidInputException",
// "LimitExceededException", ...). Transport adapters resolve HTTP and gRPC
// statuses from it.
//
// Canonical codes are lowercase, underscore-separated and 3..64 characters
// long. The empty code is never valid.
package code
