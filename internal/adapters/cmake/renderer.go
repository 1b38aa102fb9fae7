// Package cmake renders manifests as CMakeLists.txt documents describing an
// object library build of an nginx module.
package cmake

import (
	"bytes"
	"strings"

	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// blockIndent indents keywords inside a CMake command's argument list.
const blockIndent = "    "

// Renderer implements ports.ManifestRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the CMakeLists.txt text for m. The output depends only on
// its arguments. C sources are not rendered: the target compiles the
// generated module registration source alone.
func (r *Renderer) Render(m domain.Manifest, settings domain.ManifestSettings) ([]byte, error) {
	if err := settings.Validate(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	indent := strings.Repeat(" ", settings.Indent)
	target := m.TargetName

	var b bytes.Buffer

	if settings.Header != "" {
		line(&b, settings.Header)
		line(&b, "")
	}

	line(&b, "cmake_minimum_required(VERSION "+settings.CMakeMinimumVersion+")")
	line(&b, "")
	line(&b, "project("+target+")")
	line(&b, "")
	line(&b, "add_library("+target+" OBJECT)")
	line(&b, "set_property(TARGET "+target+" PROPERTY POSITION_INDEPENDENT_CODE ON)")
	line(&b, "")
	line(&b, "target_sources("+target)
	line(&b, blockIndent+"PRIVATE")
	line(&b, indent+m.Source)
	line(&b, ")")
	line(&b, "")
	line(&b, "include_directories(")
	line(&b, blockIndent+"SYSTEM")
	for _, dir := range m.IncludeDirectories {
		line(&b, indent+dir)
	}
	line(&b, ")")
	line(&b, "")

	return b.Bytes(), nil
}

func line(b *bytes.Buffer, s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}
