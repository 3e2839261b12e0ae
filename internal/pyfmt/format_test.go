package pyfmt_test

import "github.com/dalibo/permutate/internal/pyfmt"

func (suite *Suite) TestParseLiteralOnly() {
	r := suite.Require()
	f, err := pyfmt.Parse("toto")
	r.Nil(err)
	r.True(f.IsStatic())
	r.Equal(1, len(f.Sections))
	r.Equal("toto", f.Sections[0])
	r.Equal(0, f.Width())
}

func (suite *Suite) TestParseMethod() {
	r := suite.Require()
	f, err := pyfmt.Parse("{1.lower()}")
	r.Nil(err)
	r.Equal(1, len(f.Fields))
	r.Equal(1, len(f.Sections))
	r.Equal(&pyfmt.Field{Index: 1, Method: "lower()"}, f.Fields[0])
	r.Equal(2, f.Width())
}

func (suite *Suite) TestParseCombination() {
	r := suite.Require()

	f, err := pyfmt.Parse("ext_{0}_{3}")
	r.Nil(err)
	r.Equal(4, len(f.Sections))
	r.Equal("ext_", f.Sections[0])
	r.Equal(0, f.Fields[0].Index)
	r.Equal("_", f.Sections[2])
	r.Equal(4, f.Width())
}

func (suite *Suite) TestParseEscaped() {
	r := suite.Require()
	f, err := pyfmt.Parse("literal {{toto}} pouet")
	r.Nil(err)
	r.Equal(2, len(f.Sections))
	r.Equal(0, len(f.Fields))
	r.Equal("literal {", f.Sections[0])
	r.Equal("toto} pouet", f.Sections[1])
	r.Equal("literal {toto} pouet", f.Format(nil))
}

func (suite *Suite) TestParseErrors() {
	r := suite.Require()

	_, err := pyfmt.Parse("literal{0")
	r.ErrorContains(err, "end of string")
	_, err = pyfmt.Parse("literal{")
	r.ErrorContains(err, "unexpected end")
	_, err = pyfmt.Parse("{name}")
	r.ErrorContains(err, "bad index 'name'")
	_, err = pyfmt.Parse("{-1}")
	r.ErrorContains(err, "bad index")
	_, err = pyfmt.Parse("{0.title()}")
	r.ErrorContains(err, "unknown method 'title()'")
}

func (suite *Suite) TestFormat() {
	r := suite.Require()

	f, err := pyfmt.Parse("ext_{0}_{1.upper()}")
	r.Nil(err)
	r.Equal("ext_dba_ALICE", f.Format([]string{"dba", "alice"}))

	f, err = pyfmt.Parse("{1.lower()}={0.quote()}")
	r.Nil(err)
	r.Equal(`key="a \"b\""`, f.Format([]string{`a "b"`, "KEY"}))

	// Reuse buffer.
	buf := f.Append(nil, []string{"1", "A"})
	buf = f.Append(buf[:0], []string{"2", "B"})
	r.Equal(`b="2"`, string(buf))
}
