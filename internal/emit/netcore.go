package emit

import (
	"github.com/smashedpumpkin/csmake/internal/defs"
	"github.com/smashedpumpkin/csmake/internal/model"
)

const (
	// FrameworkNetCoreApp31 is the .NET Core 3.1 target framework moniker.
	FrameworkNetCoreApp31 = "netcoreapp3.1"

	netCoreTemplate = "netcoreapp.csproj.tmpl"

	// defaultCompileExcludes keeps the SDK's default excludes when compile
	// items are listed explicitly.
	defaultCompileExcludes = "$(DefaultItemExcludes);$(DefaultExcludesInProjectFolder)"
)

// netCoreProject is the template data for an SDK-style console project.
type netCoreProject struct {
	OutputDir string
	Framework string
	Include   string
	Exclude   string
	Packages  []model.PackageSpec
}

// netCoreStrategy renders SDK-style .csproj files for console executables.
type netCoreStrategy struct {
	renderer Renderer
}

// NewNetCoreStrategy creates the netcoreapp3.1 strategy.
func NewNetCoreStrategy(r Renderer) Strategy {
	return &netCoreStrategy{renderer: r}
}

func (s *netCoreStrategy) Framework() string { return FrameworkNetCoreApp31 }

func (s *netCoreStrategy) Extension() string { return defs.CSProjExt }

// Render produces a project with an executable output type, explicit
// compile items and one package reference per package.
func (s *netCoreStrategy) Render(_ string, b *model.Buildable) ([]byte, error) {
	return s.renderer.Render(netCoreTemplate, netCoreProject{
		OutputDir: b.OutputDir,
		Framework: b.Framework,
		Include:   b.SourceExpression(),
		Exclude:   defaultCompileExcludes,
		Packages:  b.Packages,
	})
}
