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
	"crypto/rand"
	"errors"
	"fmt"
	"log"
)

// Severity is an RFC 5424 style severity level for log messages
type Severity int

// Log severities, most severe first
const (
	FATAL Severity = iota
	ALERT
	CRITICAL
	ERROR
	WARN
	NOTICE
	INFO
	DEBUG
)

var severityNames = map[Severity]string{
	FATAL:    "FATAL",
	ALERT:    "ALERT",
	CRITICAL: "CRITICAL",
	ERROR:    "ERROR",
	WARN:     "WARN",
	NOTICE:   "NOTICE",
	INFO:     "INFO",
	DEBUG:    "DEBUG",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// LogContext is an interface for the contextual data attached to log output
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for use outside of any operation
type BasicLogContext struct {
	sessionID string
}

// AppName returns the service name
func (c *BasicLogContext) AppName() string {
	return "landsat-overpass"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput holds the fields of a single audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

func logMessage(ctx LogContext, severity Severity, message string) {
	log.Printf("[%s] %s {%s}: %s", severity, ctx.AppName(), ctx.SessionID(), message)
}

// LogInfo logs a message at INFO severity
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, message)
}

// LogAlert logs a message at ALERT severity
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, ALERT, message)
}

// LogAudit logs an audit entry recording an actor performing an action on an actee
func LogAudit(ctx LogContext, input LogAuditInput) {
	logMessage(ctx, input.Severity, fmt.Sprintf("[audit] %s => %s => %s: %s", input.Actor, input.Action, input.Actee, input.Message))
}

// LogSimpleErr logs a message and its underlying error at ERROR severity, and
// returns an error suitable for handing back to the caller
func LogSimpleErr(ctx LogContext, message string, err error) error {
	if err != nil {
		message = message + " " + err.Error()
	}
	logMessage(ctx, ERROR, message)
	return errors.New(message)
}

// Error is a logged error with separate internal and user-facing messages,
// plus optional detail about the HTTP exchange that produced it
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Log writes the full detail of the error to the log and returns a
// caller-facing error object
func (err Error) Log(ctx LogContext, msgAdd string) error {
	message := err.LogMsg
	if msgAdd != "" {
		message = msgAdd + ": " + message
	}
	if err.URL != "" {
		message += "\nURL: " + err.URL
	}
	if err.HTTPStatus != 0 {
		message += fmt.Sprintf("\nHTTP Status: %d", err.HTTPStatus)
	}
	if err.Response != "" {
		message += "\nResponse: " + err.Response
	}
	logMessage(ctx, ERROR, message)
	return errors.New(err.Error())
}

func (err Error) Error() string {
	if err.SimpleMsg != "" {
		return err.SimpleMsg
	}
	return err.LogMsg
}

// HTTPErr is an error tied to an HTTP status from an upstream service
type HTTPErr struct {
	Status  int
	Message string
}

func (err HTTPErr) Error() string {
	return err.Message
}

// PsuUUID generates a pseudo-random v4-shaped UUID
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
