// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the end-to-end smoke client of the API.
//
// It drives a running server through the full account life cycle
// (register, login, profile, logout, password reset) with an
// [adapter.APIClient] and fails on the first unexpected answer.
package client
