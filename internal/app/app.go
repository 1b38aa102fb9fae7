// Package app implements the application layer for cmakegen.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/cmakegen/internal/adapters/detector"
	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/cmakegen/internal/core/ports"
	"go.trai.ch/zerr"
)

// StdinPath selects standard input as the build info source.
const StdinPath = "-"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	decoder      ports.BuildInfoDecoder
	renderer     ports.ManifestRenderer
	store        ports.ManifestStore
	logger       ports.Logger
	stdin        io.Reader
	stdout       io.Writer
}

// New creates a new App instance reading from os.Stdin and writing to os.Stdout.
func New(
	loader ports.ConfigLoader,
	decoder ports.BuildInfoDecoder,
	renderer ports.ManifestRenderer,
	store ports.ManifestStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		decoder:      decoder,
		renderer:     renderer,
		store:        store,
		logger:       log,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// WithIO replaces the standard streams. This is primarily used for testing.
func (a *App) WithIO(stdin io.Reader, stdout io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	return a
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// ConfigPath names an optional settings file. Empty means defaults only.
	ConfigPath string
	// InputPath names the build info document. Empty or "-" means stdin.
	InputPath string
	// BaseDir overrides the settings' base directory when non-nil.
	BaseDir *string
	// OutputPath writes the manifest to a file instead of stdout.
	OutputPath string
	// CheckPath compares the manifest with an existing file instead of writing it.
	CheckPath string
	Verbose   bool
	JSONLogs  bool
}

// Generate renders the manifest for target. Nothing is written unless every
// step before the write succeeded.
func (a *App) Generate(ctx context.Context, target string, opts GenerateOptions) error {
	a.logger.SetJSON(opts.JSONLogs)
	a.logger.SetVerbose(opts.Verbose)

	if opts.OutputPath != "" && opts.CheckPath != "" {
		return zerr.Wrap(domain.ErrUsage, "--output and --check cannot be combined")
	}

	// 1. Resolve settings
	settings, err := a.loadSettings(opts)
	if err != nil {
		return err
	}

	// 2. Read build info
	info, err := a.readBuildInfo(opts.InputPath)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// 3. Transform and render
	manifest := domain.NewManifest(target, info, settings)
	if n := len(manifest.CSources); n > 0 {
		a.logger.Debug(fmt.Sprintf("c_sources are not emitted, ignoring %d entries", n))
	}
	a.logger.Debug(fmt.Sprintf("rendering target %q with %d include directories", target, len(manifest.IncludeDirectories)))

	content, err := a.renderer.Render(manifest, settings)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// 4. Emit
	switch {
	case opts.CheckPath != "":
		return a.check(opts.CheckPath, content)
	case opts.OutputPath != "":
		if err := a.store.Write(opts.OutputPath, content); err != nil {
			return err
		}
		a.logger.Info("wrote manifest to " + opts.OutputPath)
		return nil
	default:
		if _, err := a.stdout.Write(content); err != nil {
			return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
		}
		return nil
	}
}

func (a *App) loadSettings(opts GenerateOptions) (domain.ManifestSettings, error) {
	settings := domain.DefaultManifestSettings()

	if opts.ConfigPath != "" {
		loaded, err := a.configLoader.Load(opts.ConfigPath, settings)
		if err != nil {
			return domain.ManifestSettings{}, zerr.Wrap(err, "failed to load configuration")
		}
		settings = loaded
	}

	if opts.BaseDir != nil {
		settings.BaseDir = *opts.BaseDir
	}

	return settings, nil
}

func (a *App) readBuildInfo(path string) (domain.BuildInfo, error) {
	if path == "" || path == StdinPath {
		if detector.IsTerminal(a.stdin) {
			a.logger.Warn("reading build info JSON from the terminal, end input with Ctrl-D")
		}
		return a.decoder.Decode(a.stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.BuildInfo{}, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return a.decoder.Decode(f)
}

func (a *App) check(path string, content []byte) error {
	if err := a.store.Check(path, content); err != nil {
		return err
	}
	a.logger.Info(path + " is up to date")
	return nil
}
