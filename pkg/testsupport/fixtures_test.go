package testsupport

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFixture(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("test fixture content")

	if err := os.WriteFile(testFile, testContent, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	result := LoadFixture(t, testFile)
	if string(result) != string(testContent) {
		t.Errorf("expected %q, got %q", testContent, result)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.json")

	if err := os.WriteFile(testFile, MustJSON(t, map[string]any{"name": "test", "value": 42}), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	LoadFixtureJSON(t, testFile, &result)

	if result.Name != "test" || result.Value != 42 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestFixturePath(t *testing.T) {
	expected := filepath.Join("testdata", "agencies.json")
	if result := FixturePath("agencies.json"); result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFakeAPI(t *testing.T) {
	api := NewFakeAPI(t)
	api.Handle("/catalogs", http.StatusOK, []byte(`[]`))
	api.Handle("/agencies", http.StatusUnauthorized, []byte(`{"status":401}`))

	req, err := http.NewRequest(http.MethodGet, api.URL+"/catalogs?culture=en", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.SetBasicAuth("1234", "secret")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK || string(body) != "[]" {
		t.Errorf("expected 200 [], got %d %s", resp.StatusCode, body)
	}

	resp, err = http.Get(api.URL + "/agencies")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}

	resp, err = http.Get(api.URL + "/unknown")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown path, got %d", resp.StatusCode)
	}

	if api.Hits("/catalogs") != 1 {
		t.Errorf("expected 1 hit on /catalogs, got %d", api.Hits("/catalogs"))
	}
	last, ok := api.LastRequest("/catalogs")
	if !ok {
		t.Fatal("expected a recorded request")
	}
	if last.Query.Get("culture") != "en" || last.Username != "1234" || last.Password != "secret" {
		t.Errorf("unexpected recorded request: %+v", last)
	}
	if len(api.Requests()) != 3 {
		t.Errorf("expected 3 recorded requests, got %d", len(api.Requests()))
	}
}
