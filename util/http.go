// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// HTTPClient returns the shared client for outbound requests
func HTTPClient() *http.Client {
	return httpClient
}

// ReqByObjJSON performs an HTTP request with an optional JSON body, and
// unmarshals the JSON response into outObj when one is given. The raw
// response body is returned for error reporting. Non-2xx responses are
// returned as an HTTPErr.
func ReqByObjJSON(ctx context.Context, lCtx LogContext, method, inputURL string, inObj, outObj interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if inObj != nil {
		requestBody, err := json.Marshal(inObj)
		if err != nil {
			return nil, LogSimpleErr(lCtx, fmt.Sprintf("Failed to marshal request object %#v.", inObj), err)
		}
		bodyReader = bytes.NewBuffer(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, inputURL, bodyReader)
	if err != nil {
		return nil, LogSimpleErr(lCtx, fmt.Sprintf("Failed to make a new HTTP request for %v.", inputURL), err)
	}
	if inObj != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := HTTPClient().Do(request)
	if err != nil {
		return nil, HTTPErr{Status: http.StatusBadGateway, Message: fmt.Sprintf("Failed to reach %v: %v", inputURL, err)}
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		message := fmt.Sprintf("Request to %v returned: %v. ", inputURL, response.Status)
		LogAlert(lCtx, message)
		return responseBody, HTTPErr{Status: response.StatusCode, Message: message}
	}

	if outObj != nil {
		if err = json.Unmarshal(responseBody, outObj); err != nil {
			jsonErr := Error{LogMsg: "Failed to unmarshal JSON response: " + err.Error(),
				SimpleMsg:  "The upstream service returned an unexpected response for this request. See log for further details.",
				Response:   string(responseBody),
				URL:        inputURL,
				HTTPStatus: response.StatusCode}
			return responseBody, jsonErr.Log(lCtx, "")
		}
	}

	return responseBody, nil
}

type httpErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HTTPError logs an error and writes it out as a structured JSON response
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, status int) {
	LogAudit(ctx, LogAuditInput{Actor: "anon user", Action: r.Method + " response", Actee: r.URL.Path, Message: message, Severity: ERROR})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(httpErrorBody{Status: "error", Message: message})
}
