// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
