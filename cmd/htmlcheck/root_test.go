package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTestDataDir(path ...string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(append([]string{filepath.Dir(filename), "..", "..", "testdata"}, path...)...)
}

func runTest(args ...string) (status int, stdout, stderr string) {
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	status = run(args, outBuf, errBuf)
	return status, outBuf.String(), errBuf.String()
}

const expectedReport = `{
    "body": true,
    "div > p.intro": true,
    "div#x": true,
    "footer": false,
    "h1.headline": true,
    "head": true,
    "html": true,
    "meta[name=description]": true,
    "span": false,
    "title": true
}
`

func TestRunFile(t *testing.T) {
	status, stdout, _ := runTest("--checks", getTestDataDir("checks.json"), "--file", getTestDataDir("index.html"))
	assert.Equal(t, 0, status)
	assert.Equal(t, expectedReport, stdout)
}

func TestRunShortFlagsYAML(t *testing.T) {
	status, stdout, _ := runTest("-c", getTestDataDir("checks.yaml"), "-f", getTestDataDir("index.html"), "--format", "yaml")
	assert.Equal(t, 0, status)
	assert.Equal(t, "div#x: true\nhtml: true\nspan: false\n", stdout)
}

func TestRunURL(t *testing.T) {
	testServer := httptest.NewServer(http.FileServer(http.Dir(getTestDataDir())))
	defer testServer.Close()
	status, stdout, stderr := runTest("--checks", getTestDataDir("checks.json"), "--url", testServer.URL+"/")
	assert.Equal(t, 0, status, stderr)
	assert.Equal(t, expectedReport, stdout)
}

func TestRunURLFailingFetch(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusInternalServerError)
	}))
	defer testServer.Close()
	status, stdout, stderr := runTest("--checks", getTestDataDir("checks.json"), "--url", testServer.URL)
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unexpected response code: 500")
}

func TestRunNeitherFileNorURL(t *testing.T) {
	status, stdout, stderr := runTest("--checks", getTestDataDir("checks.json"))
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Neither file nor URL is set.")
}

func TestRunMissingChecksFile(t *testing.T) {
	missing := getTestDataDir("missing-checks.json")
	status, stdout, stderr := runTest("--checks", missing, "--file", getTestDataDir("index.html"))
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, missing+" does not exist")
}

func TestRunMissingHTMLFile(t *testing.T) {
	missing := getTestDataDir("missing.html")
	status, stdout, stderr := runTest("--checks", getTestDataDir("checks.json"), "--file", missing)
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, missing+" does not exist")
}

func TestRunInvalidSelector(t *testing.T) {
	status, stdout, stderr := runTest("--checks", getTestDataDir("invalid-selector.json"), "--file", getTestDataDir("index.html"))
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid selector")
}

func TestRunUnknownFormat(t *testing.T) {
	status, stdout, _ := runTest("--checks", getTestDataDir("checks.json"), "--file", getTestDataDir("index.html"), "--format", "xml")
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
}

func TestRunRejectsArgs(t *testing.T) {
	status, _, _ := runTest("index.html")
	assert.Equal(t, 1, status)
}

func TestNewRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	for name, shorthand := range map[string]string{"checks": "c", "file": "f", "url": "u", "verbose": "v"} {
		flag := cmd.Flags().Lookup(name)
		if assert.NotNil(t, flag, name) {
			assert.Equal(t, shorthand, flag.Shorthand)
		}
	}
	assert.Equal(t, "checks.json", cmd.Flags().Lookup("checks").DefValue)
}
