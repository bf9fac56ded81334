package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neocapy/friend-reader/internal/domain"
)

const testContainerXML = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const testOPF = `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0" unique-identifier="uid">
  <metadata>
    <dc:title>Walden</dc:title>
    <dc:language>en</dc:language>
    <dc:creator>Henry David Thoreau</dc:creator>
  </metadata>
  <manifest>
    <item id="ch1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch2" href="my%20chapter.xhtml" media-type="application/xhtml+xml"/>
    <item id="cover-img" href="images/cover.jpg" media-type="image/jpeg"/>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="ch1"/>
    <itemref idref="ch2"/>
    <itemref idref="ghost"/>
  </spine>
</package>`

func buildTestEPUB(t *testing.T, entries map[string][]byte) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestParseEPUB(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	zr := buildTestEPUB(t, map[string][]byte{
		"mimetype":               []byte("application/epub+zip"),
		"META-INF/container.xml": []byte(testContainerXML),
		"OEBPS/content.opf":      []byte(testOPF),
		"OEBPS/chapter1.xhtml":   []byte("<h1>CHAPTER ONE</h1>\n<p>A paragraph about ponds and beans.</p>"),
		"OEBPS/my chapter.xhtml": []byte("<p>Escaped href chapter text goes here.</p>"),
		"OEBPS/images/cover.jpg": jpeg,
		"OEBPS/toc.ncx":          []byte("<ncx/>"),
	})

	doc, images, err := parseEPUB(zr)
	require.NoError(t, err)

	require.NotNil(t, doc.Metadata.Title)
	assert.Equal(t, "Walden", *doc.Metadata.Title)
	require.NotNil(t, doc.Metadata.Language)
	assert.Equal(t, "en", *doc.Metadata.Language)
	require.NotNil(t, doc.Metadata.Author)
	assert.Equal(t, "Henry David Thoreau", *doc.Metadata.Author)

	// спайн: глава 1 (заголовок + абзац), затем глава с %20 в href;
	// битая ссылка "ghost" молча пропущена
	require.Len(t, doc.Elements, 3)
	assert.Equal(t, domain.Heading{Content: "CHAPTER ONE", Level: 1}, doc.Elements[0])
	assert.Equal(t, domain.Text{Content: "A paragraph about ponds and beans."}, doc.Elements[1])
	assert.Equal(t, domain.Text{Content: "Escaped href chapter text goes here."}, doc.Elements[2])

	// изображения лежат под id из манифеста, ncx картинкой не считается
	require.Len(t, images, 1)
	assert.Equal(t, jpeg, images["cover-img"])
}

func TestParseEPUBNoMetadata(t *testing.T) {
	opf := `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata/>
  <manifest>
    <item id="ch1" href="c1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine><itemref idref="ch1"/></spine>
</package>`
	zr := buildTestEPUB(t, map[string][]byte{
		"META-INF/container.xml": []byte(testContainerXML),
		"OEBPS/content.opf":      []byte(opf),
		"OEBPS/c1.xhtml":         []byte("<p>text</p>"),
	})

	doc, _, err := parseEPUB(zr)
	require.NoError(t, err)
	assert.Nil(t, doc.Metadata.Title)
	assert.Nil(t, doc.Metadata.Language)
	assert.Nil(t, doc.Metadata.Author)
}

func TestParseEPUBMissingContainer(t *testing.T) {
	zr := buildTestEPUB(t, map[string][]byte{"mimetype": []byte("application/epub+zip")})
	_, _, err := parseEPUB(zr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container")
}

func TestLoadJSONDocument(t *testing.T) {
	title := "Notes"
	doc := domain.Document{
		Metadata: domain.Metadata{Title: &title},
		Elements: domain.Elements{domain.Text{Content: "hello"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, images, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &doc, got)
	assert.Empty(t, images)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, _, err := Load("book.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported book format")
}
