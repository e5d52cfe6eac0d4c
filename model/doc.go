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

// Package model contains the closed enumerations used by Security Hub
// finding payloads.
//
// Every enumeration follows the same shape: a string type, one constant
// per wire value, ParseX for strict reverse lookup, XValues for the full
// set, and text/JSON methods that refuse values outside the set. See
// package enum for the failure kinds.
package model
