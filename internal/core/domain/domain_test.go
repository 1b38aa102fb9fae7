package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmakegen/internal/core/domain"
)

func TestJoinBase(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "relative", base: "nginx", path: "src/core", want: "nginx/src/core"},
		{name: "current dir prefix", base: "nginx", path: "./objs", want: "nginx/objs"},
		{name: "redundant separators", base: "nginx", path: "src//http/", want: "nginx/src/http"},
		{name: "empty path", base: "nginx", path: "", want: "nginx"},
		{name: "absolute path", base: "nginx", path: "/usr/include", want: "/usr/include"},
		{name: "empty base", base: "", path: "src/core", want: "src/core"},
		{name: "nested base", base: "deps/nginx", path: "src", want: "deps/nginx/src"},
		{name: "parent segment kept", base: "nginx", path: "../x", want: "nginx/../x"},
		{name: "inner parent segment kept", base: "nginx", path: "src/../inc", want: "nginx/src/../inc"},
		{name: "repeated parent segments kept", base: "nginx", path: "../../up", want: "nginx/../../up"},
		{name: "add-module sibling", base: "nginx", path: "../module/src", want: "nginx/../module/src"},
		{name: "absolute path with parent", base: "nginx", path: "/usr/../include", want: "/usr/../include"},
		{name: "dot segments inside", base: "nginx", path: "src/./core/.", want: "nginx/src/core"},
		{name: "empty base and path", base: "", path: "", want: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.JoinBase(tt.base, tt.path))
		})
	}
}

func TestJoinAll(t *testing.T) {
	t.Run("preserves order and duplicates", func(t *testing.T) {
		got := domain.JoinAll("nginx", []string{"b", "a", "b"})
		assert.Equal(t, []string{"nginx/b", "nginx/a", "nginx/b"}, got)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, domain.JoinAll("nginx", nil))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		got := domain.JoinAll("nginx", []string{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestBuildInfo_Prefixed(t *testing.T) {
	info := domain.BuildInfo{
		IncludeDirectories: []string{"src/core", "objs"},
		CSources:           []string{"src/http/ngx_http.c"},
	}

	got := info.Prefixed("nginx")

	want := domain.BuildInfo{
		IncludeDirectories: []string{"nginx/src/core", "nginx/objs"},
		CSources:           []string{"nginx/src/http/ngx_http.c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Prefixed() mismatch (-want +got):\n%s", diff)
	}

	// The receiver is left untouched.
	assert.Equal(t, "src/core", info.IncludeDirectories[0])
}

func TestNewManifest(t *testing.T) {
	info := domain.BuildInfo{
		IncludeDirectories: []string{"src/foo"},
		CSources:           []string{"src/foo/module.c"},
	}

	got := domain.NewManifest("mymod", info, domain.DefaultManifestSettings())

	want := domain.Manifest{
		TargetName:         "mymod",
		Source:             "nginx/objs/ngx_http_datadog_module_modules.c",
		IncludeDirectories: []string{"nginx/src/foo"},
		CSources:           []string{"nginx/src/foo/module.c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewManifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.ManifestSettings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*domain.ManifestSettings) {}},
		{name: "zero indent", mutate: func(s *domain.ManifestSettings) { s.Indent = 0 }},
		{name: "empty base dir", mutate: func(s *domain.ManifestSettings) { s.BaseDir = "" }},
		{name: "negative indent", mutate: func(s *domain.ManifestSettings) { s.Indent = -1 }, wantErr: true},
		{name: "empty cmake version", mutate: func(s *domain.ManifestSettings) { s.CMakeMinimumVersion = "" }, wantErr: true},
		{name: "empty generated source", mutate: func(s *domain.ManifestSettings) { s.GeneratedSource = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultManifestSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorContains(t, err, domain.ErrInvalidSettings.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
