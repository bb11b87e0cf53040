// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extrun abstracts external command execution. The packaging stages
// delegate real work to external collaborators (git, tar, mv, document
// converter, object-storage uploader); this seam lets tests substitute a
// recording fake for os/exec.
package extrun

import (
	"os"
	"os/exec"
	"strings"
)

// Executor runs external commands. An empty dir runs the command in the
// process working directory.
type Executor interface {
	// LookPath reports where the named binary lives on PATH.
	LookPath(file string) (string, error)

	// Run executes a command in dir, inheriting stderr so external tool
	// diagnostics reach the user.
	Run(dir, name string, args ...string) error

	// RunEnv is Run with extra KEY=VALUE pairs appended to the environment.
	RunEnv(dir string, env []string, name string, args ...string) error

	// Output executes a command in dir and returns its trimmed stdout.
	Output(dir, name string, args ...string) (string, error)
}

// sysExecutor is the production Executor backed by os/exec.
type sysExecutor struct{}

func (sysExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (sysExecutor) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (sysExecutor) RunEnv(dir string, env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (sysExecutor) Output(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// System returns the Executor backed by the operating system.
func System() Executor { return sysExecutor{} }
