package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/dotlabel/internal/config"
	"github.com/vk/dotlabel/internal/dot"
	"github.com/vk/dotlabel/internal/statediff"
	"github.com/vk/dotlabel/internal/testutil"
)

// stubLoader is a config.Loader returning a fixed dialect or error.
type stubLoader struct {
	dialect *config.Dialect
	err     error
	path    string
}

func (s *stubLoader) Load(_ context.Context, path string) (*config.Dialect, error) {
	s.path = path
	return s.dialect, s.err
}

// setupAppTest creates an App for cfg with debug logging captured in a buffer.
func setupAppTest(t *testing.T, cfg Config, loader config.Loader) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	testApp, err := NewApp(out, logs, appConfig, loader)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("DOTLABEL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

func TestRun_LabelsFileInPlace(t *testing.T) {
	// --- Arrange ---
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", testutil.SampleGraph)
	testApp, _, logs := setupAppTest(t, Config{GraphPath: path}, nil)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "//<processed>\n"+testutil.SampleGraphLabeled, testutil.ReadFile(t, path))
	assert.Contains(t, logs.String(), "Graph file labeled.")
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", testutil.SampleGraph)

	testApp, _, _ := setupAppTest(t, Config{GraphPath: path}, nil)
	require.NoError(t, testApp.Run(context.Background()))
	first := testutil.ReadFile(t, path)

	testApp, _, logs := setupAppTest(t, Config{GraphPath: path}, nil)
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, first, testutil.ReadFile(t, path))
	assert.Contains(t, logs.String(), "already processed")
}

func TestRun_MarkerWithCRLF(t *testing.T) {
	content := "//<processed>\r\nnot a graph at all\r\n"
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", content)

	testApp, _, _ := setupAppTest(t, Config{GraphPath: path}, nil)
	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, content, testutil.ReadFile(t, path))
}

func TestRun_ErrorsLeaveFileUntouched(t *testing.T) {
	header := "h\nh\nh\nh\n"
	testCases := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "node without label",
			content: header + "1 [shape=box]\n",
			wantErr: dot.ErrAttributeNotFound,
		},
		{
			name:    "malformed label token",
			content: header + "1 [label=\"x=1\"]\n",
			wantErr: dot.ErrMalformedLabel,
		},
		{
			name:    "edge to unknown node",
			content: header + "1 [label=\"/\\\\ x = 1\"]\n1 -> 2 [label=\"\"];\n",
			wantErr: dot.ErrDanglingEdge,
		},
		{
			name:    "variable missing in target",
			content: header + "1 [label=\"/\\\\ x = 1\"]\n2 [label=\"/\\\\ y = 1\"]\n1 -> 2 [label=\"\"];\n",
			wantErr: statediff.ErrUnknownVariable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "model.dot", tc.content)
			testApp, _, _ := setupAppTest(t, Config{GraphPath: path}, nil)

			err := testApp.Run(context.Background())

			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), path)
			assert.Equal(t, tc.content, testutil.ReadFile(t, path))
		})
	}
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.dot", testutil.SampleGraph)
	b := testutil.WriteFile(t, dir, "nested/b.dot", testutil.SampleGraph)
	other := testutil.WriteFile(t, dir, "readme.txt", "not a graph")

	testApp, _, _ := setupAppTest(t, Config{GraphPath: dir}, nil)
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "//<processed>\n"+testutil.SampleGraphLabeled, testutil.ReadFile(t, a))
	assert.Equal(t, "//<processed>\n"+testutil.SampleGraphLabeled, testutil.ReadFile(t, b))
	assert.Equal(t, "not a graph", testutil.ReadFile(t, other))
}

func TestRun_DirectoryFailsAsAWhole(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "a.dot", testutil.SampleGraph)
	bad := testutil.WriteFile(t, dir, "b.dot", "h\nh\nh\nh\n1 [shape=box]\n")

	testApp, _, _ := setupAppTest(t, Config{GraphPath: dir}, nil)
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Equal(t, testutil.SampleGraph, testutil.ReadFile(t, good), "no file is written when any file fails")
}

func TestRun_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	gv := testutil.WriteFile(t, dir, "a.gv", testutil.SampleGraph)
	dotFile := testutil.WriteFile(t, dir, "b.dot", testutil.SampleGraph)

	testApp, _, _ := setupAppTest(t, Config{GraphPath: dir, Extension: "gv"}, nil)
	require.NoError(t, testApp.Run(context.Background()))

	assert.True(t, strings.HasPrefix(testutil.ReadFile(t, gv), "//<processed>\n"))
	assert.Equal(t, testutil.SampleGraph, testutil.ReadFile(t, dotFile))
}

func TestRun_EmptyDirectory(t *testing.T) {
	testApp, _, logs := setupAppTest(t, Config{GraphPath: t.TempDir()}, nil)
	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, logs.String(), "No graph files found.")
}

func TestRun_MissingPath(t *testing.T) {
	testApp, _, _ := setupAppTest(t, Config{GraphPath: filepath.Join(t.TempDir(), "nope.dot")}, nil)
	require.Error(t, testApp.Run(context.Background()))
}

func TestRun_CancelledContext(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", testutil.SampleGraph)
	testApp, _, _ := setupAppTest(t, Config{GraphPath: path}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, testApp.Run(ctx), context.Canceled)
	assert.Equal(t, testutil.SampleGraph, testutil.ReadFile(t, path))
}

func TestRun_DryRun(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", testutil.SampleGraph)
	testApp, out, _ := setupAppTest(t, Config{GraphPath: path, DryRun: true}, nil)

	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, testutil.SampleGraph, testutil.ReadFile(t, path))
	assert.Contains(t, out.String(), `-1 -> 2 [label="",color="black",fontcolor="black"];`)
	assert.Contains(t, out.String(), `+1 -> 2 [label="action",color="black",fontcolor="black"];`)
	assert.Contains(t, out.String(), `+2 -> 3 [label="count",color="black",fontcolor="black"];`)
}

func TestRun_DryRunWithoutChanges(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", testutil.SampleGraphLabeled)
	testApp, out, logs := setupAppTest(t, Config{GraphPath: path, DryRun: true}, nil)

	require.NoError(t, testApp.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "no label changes")
}

func TestRun_WithDialect(t *testing.T) {
	// A two-line preamble and a custom marker.
	content := "digraph G {\nnodesep=0.35;\n" +
		"1 [label=\"/\\\\ x = 1\"]\n2 [label=\"/\\\\ x = 2\"]\n1 -> 2 [label=\"\"];\n}\n"
	path := testutil.WriteFile(t, t.TempDir(), "model.dot", content)

	d := config.DefaultDialect()
	d.Name = "short"
	d.HeaderLines = 2
	d.Marker = "// done"
	loader := &stubLoader{dialect: d}

	testApp, _, _ := setupAppTest(t, Config{GraphPath: path, DialectPath: "dialect.hcl"}, loader)
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "dialect.hcl", loader.path)
	assert.Equal(t, "short", testApp.Dialect().Name)
	assert.Equal(t, "// done\n"+strings.Replace(content, `label=""`, `label="x"`, 1), testutil.ReadFile(t, path))
}

func TestNewApp_DialectErrors(t *testing.T) {
	cfg, err := NewConfig(Config{GraphPath: "x.dot", DialectPath: "d.hcl"})
	require.NoError(t, err)

	_, err = NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loader")

	boom := errors.New("boom")
	_, err = NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, cfg, &stubLoader{err: boom})
	require.ErrorIs(t, err, boom)

	bad := config.DefaultDialect()
	bad.EdgePredicate = "nope"
	_, err = NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, cfg, &stubLoader{dialect: bad})
	require.Error(t, err)
}

func TestTransform_SampleGraph(t *testing.T) {
	testApp, _, _ := setupAppTest(t, Config{GraphPath: "unused.dot"}, nil)

	result, err := testApp.Transform(context.Background(), testutil.SampleGraph)
	require.NoError(t, err)

	gotLines := strings.Split(result.Text(), "\n")
	wantLines := strings.Split(testutil.SampleGraph, "\n")
	require.Len(t, gotLines, len(wantLines))
	for i := range wantLines {
		switch i {
		case 7:
			assert.Equal(t, `1 -> 2 [label="action",color="black",fontcolor="black"];`, gotLines[i])
		case 8:
			assert.Equal(t, `2 -> 3 [label="count",color="black",fontcolor="black"];`, gotLines[i])
		default:
			assert.Equal(t, wantLines[i], gotLines[i], "line %d", i+1)
		}
	}
}
