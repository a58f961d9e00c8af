// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes integer PCM AIFF files with github.com/go-audio/aiff.
//
// AIFF carries no loop markers that this package understands, so sources
// report no loop and the pipeline passes them through unchanged unless a
// region is supplied some other way.
package aiff
