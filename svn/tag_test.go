package svn

import (
	"errors"
	"fmt"
	"testing"

	"bm_tag_tool/config"
	"bm_tag_tool/log"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendCall records one invocation of the mock backend
type backendCall struct {
	op          string
	url         string
	source      string
	revision    string
	destination string
	message     string
}

// mockBackend implements Backend without spawning processes
type mockBackend struct {
	calls    []backendCall
	mkdirErr error
	copyErr  map[string]error // keyed by source URL
	output   string
}

func (m *mockBackend) Mkdir(url string, message string) (string, error) {
	m.calls = append(m.calls, backendCall{op: "mkdir", url: url, message: message})
	if m.mkdirErr != nil {
		return "", m.mkdirErr
	}
	return m.output, nil
}

func (m *mockBackend) Copy(source string, revision string, destination string, message string) (string, error) {
	m.calls = append(m.calls, backendCall{op: "cp", source: source, revision: revision, destination: destination, message: message})
	if err, ok := m.copyErr[source]; ok {
		return "", err
	}
	return m.output, nil
}

func testReleaseConfig() *config.ReleaseConfig {
	return &config.ReleaseConfig{
		TagName:    "TAG1",
		TagBase:    "/repo/tags",
		SourceBase: "/repo/trunk",
		Folders: []config.FolderSpec{
			{Name: "Motor_7k4W_Alpha", Revision: "120"},
			{Name: "Inverter_22kW", Revision: "85"},
		},
	}
}

func testOpLog() (*log.OpLog, afero.Fs) {
	fs := afero.NewMemMapFs()
	return log.NewOpLogFs(fs, "/input/BM_log"), fs
}

func TestCreateTag(t *testing.T) {
	backend := &mockBackend{}

	err := CreateTag(backend, "/repo/tags/TAG1")
	require.NoError(t, err)

	require.Len(t, backend.calls, 1)
	assert.Equal(t, "mkdir", backend.calls[0].op)
	assert.Equal(t, "/repo/tags/TAG1", backend.calls[0].url)
	assert.Equal(t, "Creating BM-tag at /repo/tags/TAG1", backend.calls[0].message)
}

func TestCreateTagPropagatesBackendError(t *testing.T) {
	backend := &mockBackend{mkdirErr: errors.New("svn mkdir failed: E170001 authorization failed")}

	err := CreateTag(backend, "/repo/tags/TAG1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E170001")
}

func TestCopyFoldersOrderAndURLs(t *testing.T) {
	backend := &mockBackend{output: "Committed revision 1234."}
	opLog, fs := testOpLog()

	results := CopyFolders(backend, testReleaseConfig(), opLog)

	require.Len(t, backend.calls, 2)
	assert.Equal(t, backendCall{
		op:          "cp",
		source:      "/repo/trunk/Motor_7k4W_Alpha",
		revision:    "120",
		destination: "/repo/tags/TAG1/Motor_7k4W_Alpha",
		message:     `Copying BM "Motor_7k4W_Alpha" from revision "120" to Tag "TAG1".`,
	}, backend.calls[0])
	assert.Equal(t, backendCall{
		op:          "cp",
		source:      "/repo/trunk/Inverter_22kW",
		revision:    "85",
		destination: "/repo/tags/TAG1/Inverter_22kW",
		message:     `Copying BM "Inverter_22kW" from revision "85" to Tag "TAG1".`,
	}, backend.calls[1])

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Committed revision 1234.", results[0].Output)
	assert.Equal(t, "/repo/tags/TAG1/Motor_7k4W_Alpha", results[0].Destination)

	// One log line per folder, display names derived from the folder names
	content, err := afero.ReadFile(fs, "/input/BM_log")
	require.NoError(t, err)
	assert.Equal(t, "Alpha : /repo/tags/TAG1/Motor_7k4W_Alpha\nInverter_22kW : /repo/tags/TAG1/Inverter_22kW\n", string(content))
}

func TestCopyFoldersContinuesAfterFailure(t *testing.T) {
	backend := &mockBackend{
		copyErr: map[string]error{
			"/repo/trunk/Motor_7k4W_Alpha": fmt.Errorf("svn cp failed: E160013 path not found"),
		},
	}
	opLog, fs := testOpLog()

	results := CopyFolders(backend, testReleaseConfig(), opLog)

	// The second folder is still attempted
	require.Len(t, backend.calls, 2)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)

	// The failed folder is still recorded in the log
	content, err := afero.ReadFile(fs, "/input/BM_log")
	require.NoError(t, err)
	assert.Equal(t, "Alpha : /repo/tags/TAG1/Motor_7k4W_Alpha\nInverter_22kW : /repo/tags/TAG1/Inverter_22kW\n", string(content))
}

func TestCopyFoldersEmptyConfiguration(t *testing.T) {
	backend := &mockBackend{}
	opLog, fs := testOpLog()

	cfg := testReleaseConfig()
	cfg.Folders = nil

	results := CopyFolders(backend, cfg, opLog)

	assert.Empty(t, results)
	assert.Empty(t, backend.calls)

	exists, err := afero.Exists(fs, "/input/BM_log")
	require.NoError(t, err)
	assert.False(t, exists)
}
