package ingest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/neocapy/friend-reader/internal/domain"
)

// container.xml — указатель на OPF-манифест.
type epubContainer struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// OPF: метаданные Dublin Core, манифест ресурсов, спайн (порядок чтения).
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest []opfItem   `xml:"manifest>item"`
	Spine    []opfRef    `xml:"spine>itemref"`
}

type opfMetadata struct {
	Title    string `xml:"title"`
	Language string `xml:"language"`
	Creator  string `xml:"creator"`
}

type opfItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type opfRef struct {
	IDRef string `xml:"idref,attr"`
}

// LoadEPUB разбирает книгу: метаданные из OPF, изображения из манифеста
// (ключ — id ресурса, под ним же их отдаёт /images/{id}), текст — обход
// глав по спайну.
func LoadEPUB(bookPath string) (*domain.Document, map[string][]byte, error) {
	zr, err := zip.OpenReader(bookPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open epub %s: %w", bookPath, err)
	}
	defer zr.Close()
	return parseEPUB(&zr.Reader)
}

func parseEPUB(zr *zip.Reader) (*domain.Document, map[string][]byte, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[path.Clean(f.Name)] = f
	}

	raw, err := readZipFile(files, "META-INF/container.xml")
	if err != nil {
		return nil, nil, fmt.Errorf("epub container: %w", err)
	}
	var c epubContainer
	if err := xml.Unmarshal(raw, &c); err != nil {
		return nil, nil, fmt.Errorf("epub container: %w", err)
	}
	if len(c.Rootfiles) == 0 {
		return nil, nil, fmt.Errorf("epub container: no rootfile")
	}

	opfPath := c.Rootfiles[0].FullPath
	raw, err = readZipFile(files, opfPath)
	if err != nil {
		return nil, nil, fmt.Errorf("epub opf: %w", err)
	}
	var pkg opfPackage
	if err := xml.Unmarshal(raw, &pkg); err != nil {
		return nil, nil, fmt.Errorf("epub opf: %w", err)
	}
	base := path.Dir(opfPath)

	manifest := make(map[string]opfItem, len(pkg.Manifest))
	for _, it := range pkg.Manifest {
		manifest[it.ID] = it
	}

	// изображения: нечитаемый ресурс просто пропускаем
	images := make(map[string][]byte)
	for _, it := range pkg.Manifest {
		if !strings.HasPrefix(it.MediaType, "image/") {
			continue
		}
		data, err := readHref(files, base, it.Href)
		if err != nil {
			continue
		}
		images[it.ID] = data
	}

	var elements domain.Elements
	for _, ref := range pkg.Spine {
		it, ok := manifest[ref.IDRef]
		if !ok {
			continue
		}
		content, err := readHref(files, base, it.Href)
		if err != nil {
			continue
		}
		elements = append(elements, ParseContent(string(content))...)
	}

	doc := &domain.Document{
		Metadata: domain.Metadata{
			Title:    optString(pkg.Metadata.Title),
			Language: optString(pkg.Metadata.Language),
			Author:   optString(pkg.Metadata.Creator),
		},
		Elements: elements,
	}
	return doc, images, nil
}

// optString: пустые метаданные считаем отсутствующими.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// readHref — ресурс по href из OPF: URL-escape и путь относительно
// каталога манифеста.
func readHref(files map[string]*zip.File, base, href string) ([]byte, error) {
	if unescaped, err := url.PathUnescape(href); err == nil {
		href = unescaped
	}
	return readZipFile(files, path.Join(base, href))
}

func readZipFile(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("no entry %s in archive", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
