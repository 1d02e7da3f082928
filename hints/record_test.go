package hints

import (
	"github.com/biogo/biogo/seq"
	check "gopkg.in/check.v1"
)

func (s *S) TestParseRecord(c *check.C) {
	r, ok := parseRecord("chr1\tspaln\tCDS\t100\t500\t300\t+\t0\tID=g1;Name=protX")
	c.Assert(ok, check.Equals, true)
	c.Check(r, check.DeepEquals, record{
		seqName: "chr1",
		feature: "CDS",
		start:   100,
		end:     500,
		score:   "300",
		value:   300,
		strand:  seq.Plus,
		attrs:   "ID=g1;Name=protX",
	})

	// Inverted coordinates are normalised.
	r, ok = parseRecord("chr1\tspaln\tCDS\t500\t100\t300\t-\t0")
	c.Assert(ok, check.Equals, true)
	c.Check(r.start, check.Equals, 100)
	c.Check(r.end, check.Equals, 500)
	c.Check(r.strand, check.Equals, seq.Minus)
	c.Check(r.attrs, check.Equals, "")

	// A dotted score keeps its text but has no numeric value.
	r, ok = parseRecord("chr1\tspaln\tCDS\t100\t500\t.\t.\t0")
	c.Assert(ok, check.Equals, true)
	c.Check(r.score, check.Equals, ".")
	c.Check(r.value, check.Equals, 0.0)
	c.Check(r.strand, check.Equals, seq.None)

	for _, bad := range []string{
		"",
		"chr1\tspaln\tCDS\t100\t500",
		"chr1 spaln CDS 100 500 300 + 0",
		"chr1\tspaln\tCDS\tx\t500\t300\t+\t0",
		"chr1\tspaln\tCDS\t100\ty\t300\t+\t0",
	} {
		_, ok := parseRecord(bad)
		c.Check(ok, check.Equals, false, check.Commentf("%q", bad))
	}
}

func (s *S) TestExonerateGroup(c *check.C) {
	g, ok := exonerateGroup("gene_id 1 ; sequence sp|Q9SE35|ARFA ; gene_orientation +")
	c.Check(ok, check.Equals, true)
	c.Check(g, check.Equals, "sp|Q9SE35|ARFA")

	_, ok = exonerateGroup("gene_id 1 ; gene_orientation +")
	c.Check(ok, check.Equals, false)
	_, ok = exonerateGroup("gene_id 1 ; sequence")
	c.Check(ok, check.Equals, false)
}

func (s *S) TestAssignedGroup(c *check.C) {
	for _, t := range []struct {
		attrs string
		want  string
		ok    bool
	}{
		{"ID=g1;Name=protX", "protX", true},
		{"ID=gene1.1;Target=protY 1 120 +", "protY", true},
		{"Parent=mRNA1", "mRNA1", true},
		{"no assignment here", "", false},
		{"Name=", "", false},
	} {
		g, ok := assignedGroup(t.attrs)
		c.Check(ok, check.Equals, t.ok, check.Commentf("%q", t.attrs))
		c.Check(g, check.Equals, t.want, check.Commentf("%q", t.attrs))
	}
}

func (s *S) TestScipioGroup(c *check.C) {
	g, qs, qe, ok := scipioGroup("ID=1;Query=protZ 1 120")
	c.Assert(ok, check.Equals, true)
	c.Check(g, check.Equals, "protZ")
	c.Check(qs, check.Equals, 1)
	c.Check(qe, check.Equals, 120)

	// Trailing attributes after the query interval are ignored.
	g, qs, qe, ok = scipioGroup("ID=1;Query=protZ 121 200;Mismatches=0")
	c.Assert(ok, check.Equals, true)
	c.Check(g, check.Equals, "protZ")
	c.Check(qs, check.Equals, 121)
	c.Check(qe, check.Equals, 200)

	for _, bad := range []string{
		"ID=1",
		"ID=1;Query=protZ",
		"ID=1;Query=protZ 1",
		"ID=1;Query=protZ one 120",
		"ID=1;Query=protZ 1 many",
	} {
		_, _, _, ok := scipioGroup(bad)
		c.Check(ok, check.Equals, false, check.Commentf("%q", bad))
	}
}

func (s *S) TestStrandChar(c *check.C) {
	c.Check(strandChar(seq.Plus), check.Equals, byte('+'))
	c.Check(strandChar(seq.Minus), check.Equals, byte('-'))
	c.Check(strandChar(seq.None), check.Equals, byte('.'))
}
