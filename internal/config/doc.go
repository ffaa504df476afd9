// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the field-sync client and the intake server.
//
// Configuration is assembled from multiple sources. The first source that sets
// a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the intake server and
// [GetClientConfig] for the device client. Client defaults are applied in one
// place, [applyClientDefaults], so no component carries its own fallback
// literals.
package config
