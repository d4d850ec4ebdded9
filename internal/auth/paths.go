// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "strings"

// RequiresAuth reports whether path needs authentication.
//
// path and every exact entry of excluded are compared with a trailing "/"
// appended when missing, so "/api/v1/status" matches "/api/v1/status/".
// An entry ending in "*" excludes every path starting with the entry minus
// the "*". An empty path or an empty exclusion list always requires auth.
func RequiresAuth(path string, excluded []string) bool {
	if path == "" || len(excluded) == 0 {
		return true
	}

	path = withTrailingSlash(path)
	for _, entry := range excluded {
		if prefix, ok := strings.CutSuffix(entry, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return false
			}
			continue
		}

		if entry != "" && path == withTrailingSlash(entry) {
			return false
		}
	}

	return true
}

func withTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// pathRule is embedded by every strategy to share [RequiresAuth].
type pathRule struct{}

func (pathRule) RequiresAuth(path string, excluded []string) bool {
	return RequiresAuth(path, excluded)
}
