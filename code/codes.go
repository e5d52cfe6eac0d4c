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

package code

// Request-side failures. The caller has to change the request before it can
// succeed.
const (
	// Invalid: a parameter value is malformed or out of range.
	// InvalidInputException, enum values outside their closed set.
	Invalid Code = "invalid"

	// Missing: a required value was empty or absent.
	Missing Code = "missing"

	// NotFound: the referenced finding, insight, member or action target
	// does not exist.
	NotFound Code = "not_found"

	// Conflict: the resource is in use or already exists.
	Conflict Code = "conflict"
)

// Caller identity and account state.
const (
	// Unauthenticated: the account is not subscribed to the service or the
	// credentials could not be used. InvalidAccessException.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied: the caller is known but lacks permission.
	PermissionDenied Code = "permission_denied"
)

// Quotas.
const (
	// QuotaExceeded: the request would exceed an account or service
	// limit. Only reducing scope or raising the quota helps.
	QuotaExceeded Code = "quota_exceeded"

	// Throttled: the request rate is too high; backing off may help.
	Throttled Code = "throttled"
)

// Server side.
const (
	// Internal: an unclassified server-side failure.
	Internal Code = "internal"

	// Unavailable: the endpoint could not be reached or answered 503.
	Unavailable Code = "unavailable"
)

// All returns every declared code in a stable order.
func All() []Code {
	return []Code{
		Invalid, Missing, NotFound, Conflict,
		Unauthenticated, PermissionDenied,
		QuotaExceeded, Throttled,
		Internal, Unavailable,
	}
}
