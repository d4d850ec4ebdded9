// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth provides the authentication strategies consulted by the HTTP
// access gate. A [Strategy] extracts raw credentials from a request, resolves
// them to a user and decides which paths need authentication at all.
//
// The strategy in use is chosen once at startup by [New] from configuration.
package auth
