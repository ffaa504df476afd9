// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the field client's background loops: the periodic
// sync job and the connectivity watcher that wakes it when the device comes
// back online.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger checks the remote service; a nil error means it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Triggerer requests an immediate sync pass without blocking.
type Triggerer interface {
	Trigger()
}
