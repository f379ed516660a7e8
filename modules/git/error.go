// Copyright 2015 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"strings"

	"code.gitea.io/publisher/modules/util"
)

// ConcatenateError concatenats an error with stderr string
func ConcatenateError(err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if len(stderr) == 0 {
		return err
	}
	return fmt.Errorf("%w - %s", err, stderr)
}

// ErrNotRepository is returned when a directory is not inside a git work tree
type ErrNotRepository struct {
	Path string
	Err  error
}

func (err ErrNotRepository) Error() string {
	return fmt.Sprintf("%s is not a version-controlled checkout: %v", err.Path, err.Err)
}

func (err ErrNotRepository) Unwrap() []error {
	return []error{util.ErrPrecondition, err.Err}
}

// IsErrNotRepository checks if an error is an ErrNotRepository
func IsErrNotRepository(err error) bool {
	_, ok := err.(ErrNotRepository)
	return ok
}
