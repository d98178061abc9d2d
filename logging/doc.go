// SPDX-License-Identifier: MIT

// Package logging defines the structured Logger used across crysym and its
// zap-backed implementation.
//
// Engine packages depend only on the Logger interface; go.uber.org/zap is
// imported here and nowhere else outside tests. The process default is a
// no-op logger until the CLI installs one with SetDefault.
package logging
