// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hints converts protein alignment output produced by spaln,
// exonerate, genomeThreader or scipio into hints for gene prediction.
//
// Each supported aligner writes GFF-like records with its own feature
// vocabulary and attribute syntax. The conversion trims coding segments
// into CDSpart hints and pairs consecutive segments of one alignment
// group into intron hints.
package hints

import "fmt"

// Program identifies the alignment program that produced the input.
type Program int

const (
	Exonerate Program = iota
	Spaln
	GenomeThreader
	Scipio
)

// ProgramFor returns the Program named by the command line identifier:
// one of "exonerate", "spaln", "gth" or "scipio".
func ProgramFor(name string) (Program, error) {
	switch name {
	case "exonerate":
		return Exonerate, nil
	case "spaln":
		return Spaln, nil
	case "gth":
		return GenomeThreader, nil
	case "scipio":
		return Scipio, nil
	}
	return 0, fmt.Errorf("hints: unknown alignment program %q", name)
}

// String returns the command line identifier for the program.
func (p Program) String() string {
	switch p {
	case Exonerate:
		return "exonerate"
	case Spaln:
		return "spaln"
	case GenomeThreader:
		return "gth"
	case Scipio:
		return "scipio"
	}
	return "unknown"
}

// SourceTag returns the source column value written on hints derived
// from the program's alignments.
func (p Program) SourceTag() string {
	switch p {
	case Exonerate:
		return "xnt2h"
	case Spaln:
		return "spn2h"
	case GenomeThreader:
		return "gth2h"
	case Scipio:
		return "scipio2h"
	}
	return ""
}

// threshold returns the score an inferred intron must exceed to be
// emitted, and whether a threshold applies to the program at all.
// Exonerate reports introns itself and scipio gates on query
// contiguity, so neither carries a score threshold.
func (p Program) threshold() (min float64, ok bool) {
	switch p {
	case Spaln:
		return 200, true
	case GenomeThreader:
		return 0.7, true
	}
	return 0, false
}
