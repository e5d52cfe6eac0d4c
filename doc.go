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

// Package securityhub provides the error model of the Security Hub client.
//
// Error is the generic service-error base: a classification code, an
// optional reason, a human message and the transport facts reported by the
// service (AWS error code, request id, HTTP status). The modeled
// exceptions (InvalidInputException, LimitExceededException and the other
// shapes the service declares) wrap an Error and add the optional short
// "Code" member:
//
//	ex := securityhub.NewInvalidInputException("MaxResults must be <= 100")
//	ex.SetCode("InvalidInput")
//
//	var invalid *securityhub.InvalidInputException
//	if errors.As(err, &invalid) {
//	    c, ok := invalid.Code()
//	    ...
//	}
//
// Exceptions are owned by the goroutine that created them. SetCode is not
// synchronized; set the code before sharing the value.
package securityhub
