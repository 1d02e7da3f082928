// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hints

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/biogo/seq"
)

// Defaults for the conversion options.
const (
	DefaultCDSCutoff    = 15
	DefaultMinIntronLen = 41
	DefaultMaxIntronLen = 350000
	DefaultPriority     = 4
	DefaultSource       = "P"
)

// noGroup is the previous-group sentinel before any record of the
// input has been paired.
const noGroup = "noP"

// Config collects the options controlling hint generation.
type Config struct {
	Program Program

	// CDSCutoff is trimmed from each end of a coding segment when
	// forming a CDSpart hint, so that the hint does not constrain
	// the segment boundaries.
	CDSCutoff int

	// MinIntronLen and MaxIntronLen bound the length of emitted
	// intron hints.
	MinIntronLen int
	MaxIntronLen int

	// Priority and Source are written into the hint attributes.
	Priority int
	Source   string
}

// NewConfig returns a Config for program p with default option values.
func NewConfig(p Program) Config {
	return Config{
		Program:      p,
		CDSCutoff:    DefaultCDSCutoff,
		MinIntronLen: DefaultMinIntronLen,
		MaxIntronLen: DefaultMaxIntronLen,
		Priority:     DefaultPriority,
		Source:       DefaultSource,
	}
}

// Stats summarises a conversion run.
type Stats struct {
	Lines   int // input lines read
	Hints   int // hint lines written
	Short   int // lines skipped for having too few or invalid columns
	BadAttr int // group-defining lines whose attribute could not be parsed
	NoGroup int // hint-bearing records seen before any group was known
}

// A Transformer converts alignment records into hints. The state
// carried between lines pairs consecutive coding segments of one
// alignment group into intron hints; it is reset implicitly whenever
// the group identity changes.
type Transformer struct {
	conf Config
	w    *bufio.Writer

	grp      string  // group of the current alignment record
	prevGrp  string  // group at the previous intron inference
	prevHalf float64 // half-score of the previous coding segment

	// Pending intron boundaries. Only one is defined after the
	// first segment of a group.
	intronStart, intronEnd int

	// Query protein coordinates, scipio only.
	qStart, qEnd int
	prevQEnd     int

	stats Stats
}

// NewTransformer returns a Transformer emitting hints for conf to w.
func NewTransformer(conf Config, w io.Writer) *Transformer {
	return &Transformer{conf: conf, w: bufio.NewWriter(w), prevGrp: noGroup}
}

// Run consumes tab-delimited alignment lines from r and writes the
// derived hints. Short or malformed lines are skipped. The returned
// Stats are valid even when err is non-nil.
func (t *Transformer) Run(r io.Reader) (Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for sc.Scan() {
		t.stats.Lines++
		if err := t.line(sc.Text()); err != nil {
			return t.stats, err
		}
	}
	if err := sc.Err(); err != nil {
		return t.stats, err
	}
	return t.stats, t.w.Flush()
}

// line processes a single alignment line, dispatching on the feature
// vocabulary of the configured program.
func (t *Transformer) line(s string) error {
	rec, ok := parseRecord(s)
	if !ok {
		t.stats.Short++
		return nil
	}

	switch t.conf.Program {
	case Exonerate:
		switch rec.feature {
		case "gene":
			t.setGroup(exonerateGroup(rec.attrs))
		case "CDS", "cds":
			if !t.grouped() {
				return nil
			}
			return t.cdsPart(rec)
		case "intron":
			// Exonerate reports introns itself; pass them
			// through subject to the length bounds.
			if !t.grouped() {
				return nil
			}
			if l := rec.end - rec.start + 1; l < t.conf.MinIntronLen || l > t.conf.MaxIntronLen {
				return nil
			}
			return t.emit(rec.seqName, "intron", rec.start, rec.end, rec.score, rec.strand)
		}

	case Spaln:
		switch rec.feature {
		case "CDS", "cds":
			t.setGroup(assignedGroup(rec.attrs))
			if !t.grouped() {
				return nil
			}
			if err := t.cdsPart(rec); err != nil {
				return err
			}
			return t.inferIntron(rec)
		}

	case GenomeThreader:
		switch rec.feature {
		case "mRNA":
			t.setGroup(assignedGroup(rec.attrs))
		case "CDS", "cds":
			if !t.grouped() {
				return nil
			}
			return t.cdsPart(rec)
		case "exon":
			if !t.grouped() {
				return nil
			}
			return t.inferIntron(rec)
		}

	case Scipio:
		if rec.feature == "protein_match" {
			grp, qs, qe, ok := scipioGroup(rec.attrs)
			if ok {
				t.grp, t.qStart, t.qEnd = grp, qs, qe
			} else {
				t.stats.BadAttr++
			}
			if !t.grouped() {
				return nil
			}
			if err := t.cdsPart(rec); err != nil {
				return err
			}
			return t.inferIntron(rec)
		}
	}

	return nil
}

// setGroup installs a newly extracted group identity. A failed
// extraction keeps the previous group and is counted; records then
// either attach to the stale group or hit the no-group path, both of
// which are reported by the caller of Run.
func (t *Transformer) setGroup(grp string, ok bool) {
	if !ok {
		t.stats.BadAttr++
		return
	}
	t.grp = grp
}

// grouped reports whether a group identity has been seen, counting
// hint-bearing records that arrive before one.
func (t *Transformer) grouped() bool {
	if t.grp == "" {
		t.stats.NoGroup++
		return false
	}
	return true
}

// cdsPart emits a CDSpart hint for rec, trimmed by the configured
// cutoff at each end. Segments shorter than twice the cutoff collapse
// to their midpoint.
func (t *Transformer) cdsPart(rec record) error {
	start := rec.start + t.conf.CDSCutoff
	end := rec.end - t.conf.CDSCutoff
	if start > end {
		start = (rec.start + rec.end) / 2
		end = start
	}
	return t.emit(rec.seqName, "CDSpart", start, end, rec.score, rec.strand)
}

// inferIntron pairs rec with the previous coding segment of the same
// group to reconstruct the intervening intron. The first segment of a
// group only seeds one boundary; each later segment completes an
// intron and seeds the boundary for the next. An intron's score is the
// sum of the half-scores of its two flanking segments.
func (t *Transformer) inferIntron(rec record) error {
	score := t.prevHalf + rec.value/2

	// Spaln lists minus strand alignments in descending genomic
	// order, so the pending boundary is the intron end instead.
	minus := t.conf.Program == Spaln && rec.strand == seq.Minus

	var err error
	if t.grp != t.prevGrp {
		if minus {
			t.intronEnd = rec.start - 1
		} else {
			t.intronStart = rec.end + 1
		}
	} else {
		if minus {
			t.intronStart = rec.end + 1
		} else {
			t.intronEnd = rec.start - 1
		}
		start, end := t.intronStart, t.intronEnd
		if end < start {
			start, end = end, start
		}
		if t.admit(start, end, score) {
			err = t.emit(rec.seqName, "intron", start, end,
				strconv.FormatFloat(score, 'g', -1, 64), rec.strand)
		}
		// Seed the boundary for the next segment of the group.
		if minus {
			t.intronEnd = rec.start - 1
		} else {
			t.intronStart = rec.end + 1
		}
	}

	t.prevHalf = rec.value / 2
	t.prevGrp = t.grp
	t.prevQEnd = t.qEnd
	return err
}

// admit reports whether a completed intron may be emitted: its length
// must lie within the configured bounds, its score must exceed the
// program threshold if one applies, and for scipio the flanking
// segments must be contiguous on the query protein.
func (t *Transformer) admit(start, end int, score float64) bool {
	if l := end - start + 1; l < t.conf.MinIntronLen || l > t.conf.MaxIntronLen {
		return false
	}
	if min, ok := t.conf.Program.threshold(); ok && score <= min {
		return false
	}
	if t.conf.Program == Scipio && t.prevQEnd+1 != t.qStart {
		return false
	}
	return true
}

// emit writes one hint line.
func (t *Transformer) emit(seqName, feature string, start, end int, score string, strand seq.Strand) error {
	_, err := fmt.Fprintf(t.w, "%s\t%s\t%s\t%d\t%d\t%s\t%c\t.\tsrc=%s;grp=%s;pri=%d\n",
		seqName, t.conf.Program.SourceTag(), feature, start, end, score,
		strandChar(strand), t.conf.Source, t.grp, t.conf.Priority)
	if err != nil {
		return err
	}
	t.stats.Hints++
	return nil
}
