// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the field device runtime: local store, remote
// adapter, client services and the background workers.
package client
