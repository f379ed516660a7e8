// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"
)

var (
	// GitExecutable is the command name of git, InitSimple replaces it with the configured path
	GitExecutable = "git"

	// defaultCommandExecutionTimeout applies to commands run without an explicit timeout
	defaultCommandExecutionTimeout = 60 * time.Second
)

// DefaultLocale is the default LC_ALL to run git commands in.
const DefaultLocale = "C"

// InitSimple applies the [git] settings to the commands created afterwards
func InitSimple(cfg setting.Git) {
	if cfg.Path != "" {
		GitExecutable = cfg.Path
	}
	if cfg.Timeout > 0 {
		defaultCommandExecutionTimeout = cfg.Timeout
	}
}

// Command represents a command with its subcommands or arguments.
type Command struct {
	name          string
	args          []string
	parentContext context.Context
}

func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}
	return util.SanitizeCredentialURLs(fmt.Sprintf("%s %s", c.name, strings.Join(c.args, " ")))
}

// NewCommand creates and returns a new Git Command based on given command and arguments.
func NewCommand(ctx context.Context, args ...string) *Command {
	return &Command{
		name:          GitExecutable,
		args:          args,
		parentContext: ctx,
	}
}

// RunOpts represents parameters to run the command.
// The checkout is only ever queried, so there is no stdin and the environment is inherited.
type RunOpts struct {
	Timeout time.Duration
	Dir     string
}

// run executes the command, writing its output into stdout and stderr
func (c *Command) run(opts *RunOpts, stdout, stderr *bytes.Buffer) error {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCommandExecutionTimeout
	}

	if len(opts.Dir) == 0 {
		log.Debug("%s", c)
	} else {
		log.Debug("%s: %v", opts.Dir, c)
	}

	ctx, cancel := context.WithTimeout(c.parentContext, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Env = append(
		os.Environ(),
		fmt.Sprintf("LC_ALL=%s", DefaultLocale),
		// avoid prompting for credentials interactively, supported since git v2.3
		"GIT_TERMINAL_PROMPT=0",
		// ignore replace references (https://git-scm.com/docs/git-replace)
		"GIT_NO_REPLACE_OBJECTS=1",
	)
	cmd.Dir = opts.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Start()
	if err == nil {
		err = cmd.Wait()
	}
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %v: %w", timeout, ctx.Err())
	}
	return err
}

// RunStdError is the error of RunStdString, it keeps the stderr of the failed command
type RunStdError interface {
	error
	Stderr() string
}

type runStdError struct {
	cmd    string
	err    error
	stderr string
	errMsg string
}

func (r *runStdError) Error() string {
	// the command and its stderr are reported to the operator as is
	if r.errMsg == "" {
		r.errMsg = fmt.Sprintf("%s: %v", r.cmd, ConcatenateError(r.err, r.stderr))
	}
	return r.errMsg
}

func (r *runStdError) Unwrap() error {
	return r.err
}

func (r *runStdError) Stderr() string {
	return r.stderr
}

// RunStdString runs the command and returns stdout/stderr as string.
// On failure the error names the command and carries its stderr.
func (c *Command) RunStdString(opts *RunOpts) (stdout, stderr string, runErr RunStdError) {
	if opts == nil {
		opts = &RunOpts{}
	}
	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	err := c.run(opts, stdoutBuf, stderrBuf)
	stderr = stderrBuf.String()
	if err != nil {
		return "", stderr, &runStdError{cmd: c.String(), err: err, stderr: stderr}
	}
	// even if there is no err, there could still be some stderr output
	return stdoutBuf.String(), stderr, nil
}
