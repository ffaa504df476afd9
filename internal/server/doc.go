// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the intake server's HTTP listener with signal handling
// and graceful shutdown.
package server
