// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"net/url"
	"strings"
)

const userPlaceholder = "sanitized-credential"

// SanitizeCredentialURLs removes the userinfo part of every URL found in s
func SanitizeCredentialURLs(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	for _, f := range fields {
		if !strings.Contains(f, "://") || !strings.Contains(f, "@") {
			continue
		}
		u, err := url.Parse(f)
		if err != nil || u.User == nil {
			continue
		}
		u.User = url.User(userPlaceholder)
		s = strings.Replace(s, f, u.String(), 1)
	}
	return s
}

// MaskToken keeps the first and last two characters of a token so it can be identified in logs
func MaskToken(token string) string {
	if len(token) <= 6 {
		return strings.Repeat("*", len(token))
	}
	return token[:2] + strings.Repeat("*", len(token)-4) + token[len(token)-2:]
}
