// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the intake server's REST API.
//
// It wires the chi router, the form and application handlers and the
// middleware that runs before them: trace ids, access logging with request
// metrics, and bearer token authentication. Failures are reported with the
// structured body the field client classifies: a status code plus an
// error_kind such as "validation" or "duplicate_key".
package http
