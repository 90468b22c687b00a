package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Exporting site"}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "blog.html")
	r.Finish()

	assert.Equal(t, "Exporting site: 2 files\n[1/2] index.html\n[2/2] blog.html\nExporting site: done\n", buf.String())
}

func TestNewReporterUnderCI(t *testing.T) {
	t.Setenv("CI", "true")
	r := NewReporter(&bytes.Buffer{}, "x")
	assert.IsType(t, &CIReporter{}, r)
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	r := NewReporter(&buf, "x")
	assert.IsType(t, &TerminalReporter{}, r)

	// Update before Start must not panic.
	r.Update(1, "early")
	r.Start(1)
	r.Update(1, "done")
	r.Finish()
}
