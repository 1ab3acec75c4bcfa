// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into audio sources using
// github.com/go-audio/aiff.
//
// Samples of 8, 16, 24 or 32 bits are scaled to [-1, 1]. Inputs that are
// not seekable are read into memory first.
package aiff
