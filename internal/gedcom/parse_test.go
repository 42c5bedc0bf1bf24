package gedcom

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0 HEAD
1 SOUR gedstore
1 FILE smith.ged
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 BIRT
2 DATE 1 JAN 1900
2 PLAC London
0 @N1@ NOTE First line
1 CONT second line
1 CONC  continued
0 TRLR
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 4)

	indi := records[1]
	assert.Equal(t, "@I1@", indi.XRef)
	assert.Equal(t, TagIndividual, indi.Tag)
	require.Len(t, indi.Children, 3)
	assert.Equal(t, "John /Smith/", indi.ChildValue(TagName))

	birth := indi.Child("BIRT")
	require.NotNil(t, birth)
	assert.Equal(t, "1 JAN 1900", birth.ChildValue(TagDate))
	assert.Equal(t, "London", birth.ChildValue(TagPlace))

	assert.Equal(t, "First line\nsecond line continued", records[2].Text())
}

func TestParseTolerance(t *testing.T) {
	t.Run("BOM, CRLF and blank lines", func(t *testing.T) {
		input := "\uFEFF0 HEAD\r\n\r\n  1 SOUR x\r\n0 TRLR\r\n"
		records, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, TagHeader, records[0].Tag)
		assert.Equal(t, "x", records[0].ChildValue(TagSource))
	})

	t.Run("empty stream", func(t *testing.T) {
		records, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("value keeps inner spacing", func(t *testing.T) {
		records, err := Parse(strings.NewReader("0 @N1@ NOTE a  b\n"))
		require.NoError(t, err)
		assert.Equal(t, "a  b", records[0].Value)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"bad level", "x HEAD\n", 1},
		{"negative level", "-1 HEAD\n", 1},
		{"level jump", "0 HEAD\n2 SOUR x\n", 2},
		{"first line nested", "1 SOUR x\n", 1},
		{"missing tag", "0 @I1@\n", 1},
		{"broken xref", "0 @I1 INDI\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v", err)
			assert.Equal(t, tt.line, syntaxErr.Line)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	records, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))
	assert.Equal(t, sample, buf.String())
}

func TestWriteDerivesLevels(t *testing.T) {
	fam := NewRecord("@F1@", TagFamily, "")
	marr := fam.AddChild("MARR", "")
	marr.AddChild(TagDate, "1920")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []*Record{fam}))
	assert.Equal(t, "0 @F1@ FAM\n1 MARR\n2 DATE 1920\n", buf.String())
}

func TestSetText(t *testing.T) {
	r := NewRecord("@N1@", TagNote, "old")
	r.AddChild(TagConcat, "er")
	r.AddChild(TagSource, "@S1@")

	r.SetText("one\ntwo\nthree")

	assert.Equal(t, "one\ntwo\nthree", r.Text())
	require.Len(t, r.Children, 3)
	assert.Equal(t, TagContinue, r.Children[0].Tag)
	assert.Equal(t, TagSource, r.Children[2].Tag)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "@I12@", CreateID(PrefixIndividual, 12))
	assert.Equal(t, 12, ParseID("@I12@"))
	assert.Equal(t, 7, ParseID("7"))
	assert.Equal(t, -1, ParseID("@X@"))
	assert.Equal(t, -1, ParseID(""))
	assert.Equal(t, "F", PrefixFor(TagFamily))

	assert.True(t, IsPointer("@I1@"))
	assert.False(t, IsPointer("@@"))
	assert.False(t, IsPointer("plain text"))
	assert.False(t, IsPointer("@a b@"))
}

func TestParseName(t *testing.T) {
	tests := []struct {
		text  string
		given string
		last  string
	}{
		{"John /Smith/", "John", "Smith"},
		{"John Paul /Smith/ Jr.", "John Paul", "Smith"},
		{"/Smith/", "", "Smith"},
		{"Madonna", "Madonna", ""},
		{"Anne /Boleyn", "Anne", "Boleyn"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name := ParseName(tt.text)
			assert.Equal(t, tt.given, name.GivenName)
			assert.Equal(t, tt.last, name.LastName)
		})
	}
	assert.Equal(t, "John /Smith/", FormatName("John", "Smith"))
}
