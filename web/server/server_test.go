package server

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type sseEvent struct {
	Type string
	Data string
}

func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()

	var events []sseEvent
	var current sseEvent
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.Type = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.Data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if current.Type != "" {
				events = append(events, current)
			}
			current = sseEvent{}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to read SSE stream: %v", err)
	}
	return events
}

func serve(path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHandleHealth(t *testing.T) {
	recorder := serve("/api/health")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	recorder := serve("/api/scenes")

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(recorder.Body).Decode(&scenes); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(scene.ListScenes(), scenes); diff != "" {
		t.Errorf("Scene list mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    int
		expectError bool
	}{
		{"missing uses default", "", 64, false},
		{"valid", "100", 100, false},
		{"lower bound", "16", 16, false},
		{"upper bound", "2048", 2048, false},
		{"below range", "15", 0, true},
		{"above range", "4096", 0, true},
		{"not a number", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.value != "" {
				values.Set("width", tt.value)
			}

			got, err := parseIntParam(values, "width", 64, MinImageSize, MaxImageSize)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %d", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseFloatParam(t *testing.T) {
	values := url.Values{"fov": {"1.5"}}
	if got, err := parseFloatParam(values, "fov", 1, 0.1, 3); err != nil || got != 1.5 {
		t.Errorf("Expected 1.5, got %f (%v)", got, err)
	}

	values = url.Values{"fov": {"5"}}
	if _, err := parseFloatParam(values, "fov", 1, 0.1, 3); err == nil {
		t.Error("Expected out of range error")
	}
}

func TestHandleRender_StreamsImage(t *testing.T) {
	recorder := serve("/api/render?scene=default&width=32&height=24&mode=preview")

	if ct := recorder.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected SSE content type, got %q", ct)
	}

	events := parseSSE(t, recorder.Body.String())
	if len(events) == 0 {
		t.Fatal("Expected SSE events")
	}

	var progress []ProgressUpdate
	var image *ImageUpdate
	for _, event := range events {
		switch event.Type {
		case "progress":
			var update ProgressUpdate
			if err := json.Unmarshal([]byte(event.Data), &update); err != nil {
				t.Fatalf("Bad progress event: %v", err)
			}
			progress = append(progress, update)
		case "image":
			image = &ImageUpdate{}
			if err := json.Unmarshal([]byte(event.Data), image); err != nil {
				t.Fatalf("Bad image event: %v", err)
			}
		case "error":
			t.Fatalf("Unexpected error event: %s", event.Data)
		}
	}

	if last := events[len(events)-1]; last.Type != "complete" {
		t.Errorf("Expected stream to end with complete, got %s", last.Type)
	}
	if len(progress) == 0 || progress[len(progress)-1].Percent != 100 {
		t.Errorf("Expected progress up to 100%%, got %+v", progress)
	}
	if image == nil {
		t.Fatal("Expected an image event")
	}

	if _, err := uuid.Parse(image.RenderID); err != nil {
		t.Errorf("Expected a uuid render id, got %q", image.RenderID)
	}
	for _, update := range progress {
		if update.RenderID != image.RenderID {
			t.Errorf("Progress render id %q does not match image %q", update.RenderID, image.RenderID)
		}
	}
	if image.Width != 32 || image.Height != 24 || image.Mode != "preview" {
		t.Errorf("Unexpected image metadata %+v", image)
	}

	raw, err := base64.StdEncoding.DecodeString(image.ImageData)
	if err != nil {
		t.Fatalf("Image data is not base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Image data is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 PNG, got %v", decoded.Bounds())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nonexistent&width=32&height=24"},
		{"bad width", "width=abc"},
		{"width out of range", "width=5000"},
		{"bad mode", "mode=sketch&width=32&height=24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := parseSSE(t, serve("/api/render?"+tt.query).Body.String())

			if len(events) != 1 || events[0].Type != "error" {
				t.Errorf("Expected a single error event, got %+v", events)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		expectedHit      bool
		expectedMaterial string
		expectedGeometry string
	}{
		{"sphere at center", "x=16&y=12", true, "custom", "sphere"},
		{"sphere in preview", "x=16&y=12&mode=preview", true, "wire", "sphere"},
		{"left wall", "x=4&y=12", true, "scene-walls", "plane"},
		{"sky", "x=16&y=0", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve("/api/inspect?scene=default&width=32&height=24&" + tt.query)
			if recorder.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
			}

			var response InspectResponse
			if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
				t.Fatal(err)
			}

			if response.Hit != tt.expectedHit {
				t.Fatalf("Expected hit=%v, got %+v", tt.expectedHit, response)
			}
			if response.MaterialName != tt.expectedMaterial {
				t.Errorf("Expected material %q, got %q", tt.expectedMaterial, response.MaterialName)
			}
			if response.GeometryType != tt.expectedGeometry {
				t.Errorf("Expected geometry %q, got %q", tt.expectedGeometry, response.GeometryType)
			}
			if !tt.expectedHit && response.ColorHex != "#19cccc" {
				t.Errorf("Expected background color #19cccc, got %s", response.ColorHex)
			}
		})
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing x", "y=1"},
		{"bad y", "x=1&y=abc"},
		{"out of bounds", "x=32&y=0&width=32&height=24"},
		{"negative", "x=-1&y=0"},
		{"unknown scene", "scene=nonexistent&x=1&y=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve("/api/inspect?" + tt.query)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", recorder.Code)
			}
		})
	}
}
