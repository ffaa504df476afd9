// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the lifecycle contract of the field device runtime.
type Client interface {
	// Run starts the background workers and blocks until ctx is cancelled.
	Run(ctx context.Context) error

	// Close releases the local store.
	Close() error
}
