// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for tasklist.
package config

// Set with -ldflags -X at build time. Never read from the runtime environment.
var (
	// BuildMode is "production" for release builds; anything else is treated
	// as a development build.
	BuildMode = "development"

	// BuildAPIURL is the API_URL environment value captured when a production
	// binary was built. It is not validated.
	BuildAPIURL = ""
)

const (
	// ModeProduction is the BuildMode value that selects BuildAPIURL.
	ModeProduction = "production"

	// DevAPIURL is the probe base URL of every non-production build.
	DevAPIURL = "http://localhost:3001"
)

// APIURL returns the base URL the connectivity probe targets.
func APIURL() string {
	return resolveAPIURL(BuildMode, BuildAPIURL)
}

// IsProduction reports whether the binary was built in production mode.
func IsProduction() bool {
	return BuildMode == ModeProduction
}

func resolveAPIURL(mode, baked string) string {
	if mode == ModeProduction {
		return baked
	}
	return DevAPIURL
}
