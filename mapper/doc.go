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

// Package mapper resolves securityhub errors into HTTP and gRPC statuses.
//
// Resolution order, highest first:
//
//  1. an exact rule for the AWS error code ("LimitExceededException");
//  2. the default for the classification code (code.QuotaExceeded);
//  3. the fallback (500 / codes.Internal).
//
// A Mapper is built once with New and is immutable afterwards, so it can be
// shared by any number of goroutines.
//
//	m, err := mapper.New(
//	    mapper.WithHTTPErrorCode("ThrottlingException", http.StatusBadRequest),
//	)
package mapper
