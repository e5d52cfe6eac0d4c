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

// Package apis holds the small contracts shared by the securityhub error
// types and the transport adapters.
//
// Adapters (httpx, grpcx, awsjson, adapter) depend on these interfaces, not
// on the concrete exception structs, so callers can plug in their own
// error types as long as they satisfy them.
//
// The package only carries interfaces and plain view structs.
package apis
