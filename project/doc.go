// SPDX-License-Identifier: MIT

// Package project resolves the on-disk layout of a .casm project.
//
// A project root is any directory holding a ".casm" subdirectory. All
// methods of DirectoryStructure are pure path construction except the
// All* listings, which read the filesystem through an afero.Fs so that
// tests can run against an in-memory tree.
package project
