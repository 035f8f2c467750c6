// Package tree renders a dependency tree as indented text.
package tree

import (
	"io"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/ui/output"
	"go.trai.ch/pipbridge/internal/ui/style"
)

// Renderer writes dependency trees to an output stream.
type Renderer struct {
	w      io.Writer
	styles style.Styles
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w:      w,
		styles: style.New(output.Renderer(w)),
	}
}

// Render writes both sections of t. Sections without packages are marked as empty.
func (r *Renderer) Render(t *domain.DependencyTree) error {
	var b strings.Builder
	r.section(&b, domain.SectionDefault, t.Default)
	r.section(&b, domain.SectionDevelop, t.Develop)
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) section(b *strings.Builder, s domain.PackageSection, roots []domain.TreeNode) {
	b.WriteString(r.styles.Heading.Render("["+s.String()+"]") + "\n")
	if len(roots) == 0 {
		b.WriteString(r.styles.Muted.Render("(empty)") + "\n")
		return
	}
	for _, root := range roots {
		b.WriteString(r.label(root, true) + "\n")
		r.children(b, root.Dependencies, "")
	}
}

func (r *Renderer) children(b *strings.Builder, nodes []domain.TreeNode, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, next := style.Branch, style.Pipe
		if last {
			connector, next = style.Last, style.Indent
		}
		b.WriteString(r.styles.Muted.Render(prefix+connector) + r.label(n, false) + "\n")
		r.children(b, n.Dependencies, prefix+next)
	}
}

func (r *Renderer) label(n domain.TreeNode, root bool) string {
	name := n.Name
	if root {
		name = r.styles.Name.Render(n.Name)
	}
	if n.Version != "" {
		name += r.styles.Muted.Render("==" + n.Version)
	}
	if n.Cycle {
		name += " " + r.styles.Muted.Render(style.Tilde+" cycle")
	}
	return name
}
