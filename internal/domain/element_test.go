package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsRoundTrip(t *testing.T) {
	title := "Walden"
	lang := "en"
	doc := Document{
		Metadata: Metadata{Title: &title, Language: &lang},
		Elements: Elements{
			Heading{Content: "Chapter 1", Level: 1},
			Text{Content: "I went to the woods."},
			Text{Content: ""},
			Image{ID: "cover", URL: "images/cover.png"},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}

func TestElementsTaggedEncoding(t *testing.T) {
	data, err := json.Marshal(Elements{
		Text{Content: "hi"},
		Heading{Content: "H", Level: 2},
		Image{ID: "img1", URL: "u"},
	})
	require.NoError(t, err)

	want := `[{"type":"text","content":"hi"},` +
		`{"type":"heading","content":"H","level":2},` +
		`{"type":"image","id":"img1","url":"u"}]`
	assert.JSONEq(t, want, string(data))
}

func TestElementsUnknownTypeRejected(t *testing.T) {
	var e Elements
	err := json.Unmarshal([]byte(`[{"type":"video","src":"x"}]`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestMetadataNullFields(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":{"title":null,"language":null,"author":null},"elements":[]}`), &doc))
	assert.Nil(t, doc.Metadata.Title)
	assert.Nil(t, doc.Metadata.Author)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"title":null,"language":null,"author":null},"elements":[]}`, string(data))
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#A1B2C3", "#a1b2c3"},
		{"#ffffff", "#ffffff"},
		{"fff", DefaultColor},
		{"#12345", DefaultColor},
		{"#12345g", DefaultColor},
		{"", DefaultColor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeColor(tt.in), "input %q", tt.in)
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("alice"))
	assert.False(t, ValidName("   "))
	assert.False(t, ValidName(""))
}
