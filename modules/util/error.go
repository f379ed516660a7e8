// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
)

// Common Errors forming the base of our error system
//
// Every fatal condition of a publishing run can be tested against these errors
// using errors.Is.
var (
	ErrNotExist = errors.New("resource does not exist")

	// ErrConfiguration is returned when the settings or the credential are unusable.
	// It is always reported before any network call.
	ErrConfiguration = errors.New("configuration error")
	// ErrPrecondition is returned when the checkout is not in a publishable state.
	ErrPrecondition = errors.New("precondition failed")
	// ErrRemote is returned when a remote call answers with an unexpected result.
	ErrRemote = errors.New("remote api error")
	// ErrLocalIO is returned when an artifact cannot be read.
	ErrLocalIO = errors.New("local i/o error")
)

// SilentWrap provides a simple wrapper for a wrapped error where the wrapped error message plays no part in the error message
// Especially useful for "untyped" errors created with "errors.New(…)" that can be classified as configuration or precondition errors
type SilentWrap struct {
	Message string
	Err     error
}

// Error returns the message
func (w SilentWrap) Error() string {
	return w.Message
}

// Unwrap returns the underlying error
func (w SilentWrap) Unwrap() error {
	return w.Err
}

// NewSilentWrapErrorf returns an error that formats as the given text but unwraps as the provided error
func NewSilentWrapErrorf(unwrap error, message string, args ...any) error {
	if len(args) == 0 {
		return SilentWrap{Message: message, Err: unwrap}
	}
	return SilentWrap{Message: fmt.Sprintf(message, args...), Err: unwrap}
}

// NewNotExistErrorf returns an error that formats as the given text but unwraps as an ErrNotExist
func NewNotExistErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrNotExist, message, args...)
}

// NewConfigurationErrorf returns an error that formats as the given text but unwraps as an ErrConfiguration
func NewConfigurationErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrConfiguration, message, args...)
}

// NewPreconditionErrorf returns an error that formats as the given text but unwraps as an ErrPrecondition
func NewPreconditionErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrPrecondition, message, args...)
}

// LocalIOError wraps an artifact read failure, keeping the path and the cause in the message
type LocalIOError struct {
	Path string
	Err  error
}

func (e LocalIOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e LocalIOError) Unwrap() []error {
	return []error{ErrLocalIO, e.Err}
}
