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

// Package awsjson reads and writes Security Hub error responses in the
// AWS REST-JSON error format:
//
//	HTTP/1.1 400 Bad Request
//	x-amzn-RequestId: 5c1d...
//	x-amzn-ErrorType: InvalidInputException:http://internal.amazon.com/...
//
//	{"__type": "InvalidInputException", "message": "...", "Code": "InvalidInput"}
//
// UnmarshalError turns such a response into the matching exception from
// package securityhub; MarshalError does the reverse for servers and test
// doubles. Bodies are handled as google.protobuf.Struct values through
// protojson.
package awsjson
