// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the wallet lock client and the development biometric agent.
//
// Configuration is assembled from multiple sources. Sources are merged in
// the following order and a field already set by an earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] and [GetAgentConfig].
package config
