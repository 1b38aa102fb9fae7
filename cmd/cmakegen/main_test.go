package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cmakegen/internal/adapters/buildinfo"
	"go.trai.ch/cmakegen/internal/adapters/cmake"
	"go.trai.ch/cmakegen/internal/app"
	"go.trai.ch/cmakegen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"cmakegen": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func newComponents(t *testing.T, stdin string, stdout *bytes.Buffer) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		buildinfo.NewDecoder(),
		cmake.NewRenderer(),
		mocks.NewMockManifestStore(ctrl),
		mockLogger,
	).WithIO(strings.NewReader(stdin), stdout)

	return &app.Components{App: application, Logger: mockLogger}, mockLogger
}

// TestRun_Success verifies that run returns 0 and prints the manifest.
func TestRun_Success(t *testing.T) {
	stdout := new(bytes.Buffer)
	components, _ := newComponents(t, `{"include_directories": ["src/foo"], "c_sources": []}`, stdout)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"mymod"}, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "project(mymod)")
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"mymod"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when generation fails.
func TestRun_ExecutionError(t *testing.T) {
	stdout := new(bytes.Buffer)
	components, mockLogger := newComponents(t, `{"c_sources": []}`, stdout)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"mymod"}, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_UsageError verifies that a missing target name fails before any input is read.
func TestRun_UsageError(t *testing.T) {
	stdout := new(bytes.Buffer)
	components, mockLogger := newComponents(t, "", stdout)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), nil, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_CleanupCalled verifies that the provider's cleanup runs.
func TestRun_CleanupCalled(t *testing.T) {
	components, _ := newComponents(t, `{"include_directories": [], "c_sources": []}`, new(bytes.Buffer))

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"mymod"}, os.Stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}
