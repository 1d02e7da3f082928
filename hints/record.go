// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hints

import (
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"
)

// record is a single alignment line in GFF column order. Coordinates
// are 1-based inclusive and normalised so that start <= end. The score
// column is kept verbatim for re-emission alongside its numeric value.
type record struct {
	seqName    string
	feature    string
	start, end int
	score      string
	value      float64
	strand     seq.Strand
	attrs      string
}

// parseRecord splits a tab-delimited alignment line into a record.
// Lines with fewer than 8 columns or non-numeric coordinates are
// rejected.
func parseRecord(line string) (record, bool) {
	f := strings.Split(line, "\t")
	if len(f) < 8 {
		return record{}, false
	}
	start, err := strconv.Atoi(f[3])
	if err != nil {
		return record{}, false
	}
	end, err := strconv.Atoi(f[4])
	if err != nil {
		return record{}, false
	}
	if start > end {
		start, end = end, start
	}
	r := record{
		seqName: f[0],
		feature: f[2],
		start:   start,
		end:     end,
		score:   f[5],
	}
	if v, err := strconv.ParseFloat(f[5], 64); err == nil {
		r.value = v
	}
	switch f[6] {
	case "+":
		r.strand = seq.Plus
	case "-":
		r.strand = seq.Minus
	default:
		r.strand = seq.None
	}
	if len(f) > 8 {
		r.attrs = f[8]
	}
	return r, true
}

// strandChar returns the hint column character for s.
func strandChar(s seq.Strand) byte {
	switch s {
	case seq.Plus:
		return '+'
	case seq.Minus:
		return '-'
	}
	return '.'
}

// exonerateGroup returns the aligned protein name from an exonerate
// gene line attribute of the form "gene_id 1 ; sequence NAME ; ...".
func exonerateGroup(attrs string) (string, bool) {
	f := strings.Fields(attrs)
	for i, tok := range f {
		if tok == "sequence" && i+1 < len(f) {
			return f[i+1], true
		}
	}
	return "", false
}

// assignedGroup returns the protein name from a spaln CDS or
// genomeThreader mRNA attribute: the first space-delimited field of
// the text after the last "=".
func assignedGroup(attrs string) (string, bool) {
	i := strings.LastIndex(attrs, "=")
	if i < 0 {
		return "", false
	}
	f := strings.Fields(attrs[i+1:])
	if len(f) == 0 {
		return "", false
	}
	return f[0], true
}

// scipioGroup returns the query protein name and query interval from a
// scipio protein_match attribute containing "Query=NAME QSTART QEND".
func scipioGroup(attrs string) (grp string, qStart, qEnd int, ok bool) {
	const tag = "Query="
	i := strings.Index(attrs, tag)
	if i < 0 {
		return "", 0, 0, false
	}
	s := attrs[i+len(tag):]
	if j := strings.IndexByte(s, ';'); j >= 0 {
		s = s[:j]
	}
	f := strings.Fields(s)
	if len(f) < 3 {
		return "", 0, 0, false
	}
	qStart, err := strconv.Atoi(f[1])
	if err != nil {
		return "", 0, 0, false
	}
	qEnd, err = strconv.Atoi(f[2])
	if err != nil {
		return "", 0, 0, false
	}
	return f[0], qStart, qEnd, true
}
