// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// align2hints converts protein alignment output produced by spaln,
// exonerate, genomeThreader or scipio into a hints file for gene
// prediction, emitting trimmed CDSpart hints for coding segments and
// intron hints inferred between consecutive segments of an alignment.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/align2hints/hints"
)

func main() {
	inName := flag.String("in", "", "Filename for alignment input. Defaults to stdin.")
	outName := flag.String("out", "", "Filename for hint output. Defaults to stdout.")
	prgName := flag.String("prg", "", "Alignment program that produced the input: exonerate, spaln, gth or scipio.")
	cutoff := flag.Int("cdspart", hints.DefaultCDSCutoff, "Cutoff trimmed from each end of a CDSpart hint.")
	minIntron := flag.Int("minintronlen", hints.DefaultMinIntronLen, "Minimum length of an emitted intron hint.")
	maxIntron := flag.Int("maxintronlen", hints.DefaultMaxIntronLen, "Maximum length of an emitted intron hint.")
	priority := flag.Int("priority", hints.DefaultPriority, "Priority written to the hint attributes.")
	source := flag.String("src", hints.DefaultSource, "Source identifier written to the hint attributes.")
	help := flag.Bool("help", false, "Print this usage message.")

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *prgName == "" {
		flag.Usage()
		os.Exit(1)
	}
	prg, err := hints.ProgramFor(*prgName)
	if err != nil {
		log.Fatalf("invalid program: %v", err)
	}

	var in io.Reader
	if *inName == "" {
		fmt.Fprintln(os.Stderr, "reading alignments from stdin.")
		in = os.Stdin
	} else if f, err := os.Open(*inName); err != nil {
		log.Fatalf("could not open %q: %v", *inName, err)
	} else {
		fmt.Fprintf(os.Stderr, "reading alignments from %q.\n", *inName)
		defer f.Close()
		in = f
	}

	var out io.Writer
	if *outName == "" {
		fmt.Fprintln(os.Stderr, "writing hints to stdout.")
		out = os.Stdout
	} else if f, err := os.Create(*outName); err != nil {
		log.Fatalf("could not create %q: %v", *outName, err)
	} else {
		defer f.Close()
		buf := bufio.NewWriter(f)
		defer buf.Flush()
		out = buf
		fmt.Fprintf(os.Stderr, "writing hints to %q.\n", *outName)
	}

	conf := hints.Config{
		Program:      prg,
		CDSCutoff:    *cutoff,
		MinIntronLen: *minIntron,
		MaxIntronLen: *maxIntron,
		Priority:     *priority,
		Source:       *source,
	}

	st, err := hints.NewTransformer(conf, out).Run(in)
	if err != nil {
		log.Fatalf("failed to convert alignments: %v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d hints from %d lines.\n", st.Hints, st.Lines)
	if st.BadAttr != 0 {
		fmt.Fprintf(os.Stderr, "warning: %d group attributes could not be parsed.\n", st.BadAttr)
	}
	if st.NoGroup != 0 {
		fmt.Fprintf(os.Stderr, "warning: %d records before any alignment group were dropped.\n", st.NoGroup)
	}
}
