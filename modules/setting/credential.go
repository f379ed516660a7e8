// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	"code.gitea.io/publisher/modules/util"
)

// Credential is the basic auth pair used against the release API
type Credential struct {
	User  string
	Token string
}

// String never prints the token in clear
func (c Credential) String() string {
	return c.User + ":" + util.MaskToken(c.Token)
}

// LoadCredential reads a "user:token" value from the named environment variable
func LoadCredential(getenv func(string) string, envName string) (Credential, error) {
	raw := getenv(envName)
	if raw == "" {
		return Credential{}, util.NewConfigurationErrorf("%s not defined.", envName)
	}
	user, token, ok := strings.Cut(raw, ":")
	if !ok || user == "" || token == "" {
		return Credential{}, util.NewConfigurationErrorf("%s must be of the form user:token", envName)
	}
	return Credential{User: user, Token: token}, nil
}
