package content

import (
	"context"
	"embed"
	"io/fs"
)

//go:embed sample/data.json sample/pages/*.md
var sampleFS embed.FS

const samplePayload = "sample/data.json"

// SampleSource serves the embedded sample content.
type SampleSource struct{}

func (SampleSource) String() string { return "sample" }

func (SampleSource) Fetch(ctx context.Context) (*Payload, error) {
	data, err := sampleFS.ReadFile(samplePayload)
	if err != nil {
		return nil, err
	}
	return DecodePayload(samplePayload, data)
}

// SampleData returns the raw embedded sample payload (JSON).
func SampleData() []byte {
	data, _ := sampleFS.ReadFile(samplePayload)
	return data
}

// SamplePages returns the embedded static pages (home.md, introduction.md, world.md).
func SamplePages() fs.FS {
	sub, err := fs.Sub(sampleFS, "sample/pages")
	if err != nil {
		panic(err)
	}
	return sub
}
