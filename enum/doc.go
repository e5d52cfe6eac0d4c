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

// Package enum holds the machinery shared by the closed string
// enumerations in package model.
//
// An enumeration is a named string type whose exported constants are its
// only valid values, each constant's value being the canonical wire
// string. Reverse lookup is an exact, case-sensitive match implemented as a
// switch over the declared constants; nothing is trimmed or folded, so a
// value read from the wire always writes back byte-for-byte.
//
// Lookups fail in exactly two ways, both reported as *ParseError:
//
//   - KindEmpty: the input was the empty string, a nil *string or a JSON
//     null (errors.Is(err, ErrEmptyInput));
//   - KindUnknownVariant: the input matched no declared value
//     (errors.Is(err, ErrUnknownVariant)). The message embeds the input
//     verbatim.
//
// Neither is transient. An unknown variant usually means the client model
// is older than the service; surface it, do not retry it.
package enum
