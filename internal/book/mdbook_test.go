package book

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBookJSON = `{
	"sections": [
		{
			"Chapter": {
				"name": "Introduction",
				"content": "# Intro\n",
				"number": [1],
				"sub_items": [
					{
						"Chapter": {
							"name": "Details",
							"content": "details\n",
							"number": [1, 1],
							"sub_items": [],
							"path": "chapter/details.md",
							"source_path": "chapter/details.md",
							"parent_names": ["Introduction"]
						}
					}
				],
				"path": "intro.md",
				"source_path": "intro.md",
				"parent_names": []
			}
		},
		"Separator",
		{"PartTitle": "Reference"}
	],
	"__non_exhaustive": null
}`

func TestBook_RoundTrip(t *testing.T) {
	var bk Book
	require.NoError(t, json.Unmarshal([]byte(sampleBookJSON), &bk))

	require.Len(t, bk.Sections, 3)
	require.NotNil(t, bk.Sections[0].Chapter)
	assert.Nil(t, bk.Sections[1].Chapter)
	assert.Nil(t, bk.Sections[2].Chapter)

	out, err := json.Marshal(&bk)
	require.NoError(t, err)

	// Non-chapter variants survive verbatim.
	assert.Contains(t, string(out), `"Separator"`)
	assert.Contains(t, string(out), `"PartTitle": "Reference"`)
	assert.Contains(t, string(out), `"__non_exhaustive":null`)

	// And the whole tree parses back to the same structure.
	var again Book
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, bk, again)
}

func TestBook_ForEachChapter(t *testing.T) {
	var bk Book
	require.NoError(t, json.Unmarshal([]byte(sampleBookJSON), &bk))

	var names []string
	bk.ForEachChapter(func(ch *Chapter) {
		names = append(names, ch.Name)
	})
	assert.Equal(t, []string{"Introduction", "Details"}, names)
}

func TestBook_ForEachChapter_Mutates(t *testing.T) {
	var bk Book
	require.NoError(t, json.Unmarshal([]byte(sampleBookJSON), &bk))

	bk.ForEachChapter(func(ch *Chapter) {
		ch.Content = "rewritten"
	})

	out, err := json.Marshal(&bk)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), `"rewritten"`))
}

func TestParsePreprocessorInput(t *testing.T) {
	input := `[
		{
			"root": "/book",
			"config": {
				"book": {"title": "Test"},
				"preprocessor": {"termlink": {"glossary-path": "glossary.md"}}
			},
			"renderer": "html",
			"mdbook_version": "0.4.40"
		},
		` + sampleBookJSON + `
	]`

	ctx, bk, err := ParsePreprocessorInput(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "html", ctx.Renderer)
	assert.Equal(t, "/book", ctx.Root)
	require.Len(t, bk.Sections, 3)

	table := ctx.PreprocessorTable("termlink")
	require.NotNil(t, table)
	assert.Contains(t, string(table), "glossary-path")

	assert.Nil(t, ctx.PreprocessorTable("other"))
}

func TestParsePreprocessorInput_Malformed(t *testing.T) {
	_, _, err := ParsePreprocessorInput(strings.NewReader(`{"not": "an array"}`))
	require.Error(t, err)

	_, _, err = ParsePreprocessorInput(strings.NewReader(`[{}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected [context, book]")
}
