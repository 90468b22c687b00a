package site

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"sort"
	"text/template/parse"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/folio/internal/router"
)

// View names of the templates a page load can execute.
const (
	viewUnavailable = "unavailable"
	detailSuffix    = "-detail"
)

// Theme is the parsed template set plus the two static assets. Each view
// gets its own clone of the layout with "content" bound to the view body, and
// the mount ids that body declares.
type Theme struct {
	views     map[string]*template.Template
	mounts    map[string][]string
	fragments *template.Template
	CSS       string
	JS        string
}

// viewNames lists every view a theme must provide.
func viewNames() []string {
	names := []string{viewUnavailable}
	for _, p := range router.Pages {
		names = append(names, string(p))
		if _, ok := p.Kind(); ok {
			names = append(names, string(p)+detailSuffix)
		}
	}
	return names
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() (*Theme, error) {
	return buildTheme(nil)
}

// LoadTheme builds a theme from the built-in templates overlaid with every
// *.html file under dir. A file there may redefine any named template.
// style.css and script.js in dir replace the built-in assets.
func LoadTheme(dir string) (*Theme, error) {
	if dir == "" {
		return DefaultTheme()
	}
	fsys := os.DirFS(dir)

	matches, err := doublestar.Glob(fsys, "**/*.html")
	if err != nil {
		return nil, fmt.Errorf("scanning theme %s: %w", dir, err)
	}
	sort.Strings(matches)

	overrides := make([]string, 0, len(matches))
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading theme file %s: %w", name, err)
		}
		overrides = append(overrides, string(raw))
	}

	t, err := buildTheme(overrides)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", dir, err)
	}
	if css, err := readOptional(fsys, "style.css"); err != nil {
		return nil, err
	} else if css != "" {
		t.CSS = css
	}
	if js, err := readOptional(fsys, "script.js"); err != nil {
		return nil, err
	} else if js != "" {
		t.JS = js
	}
	return t, nil
}

func readOptional(fsys fs.FS, name string) (string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme file %s: %w", name, err)
	}
	return string(raw), nil
}

func buildTheme(overrides []string) (*Theme, error) {
	base, err := template.New("layout").Parse(layoutTemplate + pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	fragments, err := template.New("fragments").Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing fragments: %w", err)
	}
	for i, src := range overrides {
		if _, err := base.New(fmt.Sprintf("override-%d", i)).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing override: %w", err)
		}
		if _, err := fragments.New(fmt.Sprintf("override-%d", i)).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing override: %w", err)
		}
	}

	t := &Theme{
		views:     make(map[string]*template.Template),
		mounts:    make(map[string][]string),
		fragments: fragments,
		CSS:       cssContent,
		JS:        jsContent,
	}
	for _, name := range viewNames() {
		if base.Lookup(name) == nil {
			return nil, fmt.Errorf("view %q is not defined", name)
		}
		view, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := view.New("content").Parse(`{{template "` + name + `" .}}`); err != nil {
			return nil, fmt.Errorf("binding view %s: %w", name, err)
		}
		t.views[name] = view
		t.mounts[name] = mountsOf(view, "layout")
	}
	return t, nil
}

// Mounts returns the container ids the view declares.
func (t *Theme) Mounts(view string) []string {
	return t.mounts[view]
}

// mountsOf walks the parse tree of the named template, following nested
// {{template}} calls, and collects every {{.Mount "id"}} argument.
func mountsOf(t *template.Template, name string) []string {
	var ids []string
	seen := make(map[string]bool)
	visited := make(map[string]bool)

	var walk func(n parse.Node)
	walkTemplate := func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		if tt := t.Lookup(name); tt != nil && tt.Tree != nil {
			walk(tt.Tree.Root)
		}
	}
	walkPipe := func(p *parse.PipeNode) {
		if p == nil {
			return
		}
		for _, cmd := range p.Cmds {
			for i, arg := range cmd.Args {
				f, ok := arg.(*parse.FieldNode)
				if !ok || len(f.Ident) != 1 || f.Ident[0] != "Mount" || i+1 >= len(cmd.Args) {
					continue
				}
				if s, ok := cmd.Args[i+1].(*parse.StringNode); ok && !seen[s.Text] {
					seen[s.Text] = true
					ids = append(ids, s.Text)
				}
			}
		}
	}
	walk = func(n parse.Node) {
		switch n := n.(type) {
		case *parse.ListNode:
			if n == nil {
				return
			}
			for _, c := range n.Nodes {
				walk(c)
			}
		case *parse.ActionNode:
			walkPipe(n.Pipe)
		case *parse.IfNode:
			walkBranch(&n.BranchNode, walk, walkPipe)
		case *parse.RangeNode:
			walkBranch(&n.BranchNode, walk, walkPipe)
		case *parse.WithNode:
			walkBranch(&n.BranchNode, walk, walkPipe)
		case *parse.TemplateNode:
			walkPipe(n.Pipe)
			walkTemplate(n.Name)
		}
	}

	walkTemplate(name)
	return ids
}

func walkBranch(b *parse.BranchNode, walk func(parse.Node), walkPipe func(*parse.PipeNode)) {
	walkPipe(b.Pipe)
	if b.List != nil {
		walk(b.List)
	}
	if b.ElseList != nil {
		walk(b.ElseList)
	}
}
