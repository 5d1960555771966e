package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Anish177/lescolors/pkg/colour"
)

// execute runs the root command with the given arguments against a
// clean environment and returns the captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Point config and cache at scratch directories so the test never
	// touches the real user environment.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	// Reset global flag state left over from previous executions.
	flagFormat = "hex"
	flagPreview = false
	flagNoColour = false
	flagVerbose = false
	colour.DisableColourOutput = false
	adjacentOffset = colour.DefaultAdjacentOffset
	dominantQuality = 0
	dominantAlgorithm = ""
	dominantColours = 0
	dominantPalette = false
	dominantNoCache = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeRedPNG writes a solid red PNG into dir and returns its path.
func writeRedPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	path := filepath.Join(dir, "red.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComplementCommand(t *testing.T) {
	out, err := execute(t, "complement", "255,0,0")
	if err != nil {
		t.Fatalf("complement error: %v", err)
	}
	if out != "#00ffff\n" {
		t.Errorf("output = %q, want %q", out, "#00ffff\n")
	}
}

func TestComplementCommandJSON(t *testing.T) {
	out, err := execute(t, "complement", "--format", "json", "#ff0000")
	if err != nil {
		t.Fatalf("complement error: %v", err)
	}

	var entry colourEntry
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if entry.Hex != "#00ffff" {
		t.Errorf("hex = %q, want #00ffff", entry.Hex)
	}
}

func TestComplementCommandInvalidColour(t *testing.T) {
	if _, err := execute(t, "complement", "not-a-colour"); err == nil {
		t.Error("invalid colour expected error, got nil")
	}
	if _, err := execute(t, "complement", "300,0,0"); err == nil {
		t.Error("out-of-range channel expected error, got nil")
	}
}

func TestAdjacentCommand(t *testing.T) {
	out, err := execute(t, "adjacent", "255,0,0")
	if err != nil {
		t.Fatalf("adjacent error: %v", err)
	}
	if out != "#ff0080\n#ff8000\n" {
		t.Errorf("output = %q, want rose then orange", out)
	}
}

func TestAdjacentCommandCustomOffset(t *testing.T) {
	out, err := execute(t, "adjacent", "--offset", "120", "255,0,0")
	if err != nil {
		t.Fatalf("adjacent error: %v", err)
	}
	// 120 degrees either side of red lands on blue and green.
	if out != "#0000ff\n#00ff00\n" {
		t.Errorf("output = %q, want blue then green", out)
	}
}

func TestAdjacentCommandInvalidOffset(t *testing.T) {
	if _, err := execute(t, "adjacent", "--offset", "200", "255,0,0"); err == nil {
		t.Error("offset >= 180 expected error, got nil")
	}
}

func TestAnalogousCommand(t *testing.T) {
	out, err := execute(t, "analogous", "255,0,0")
	if err != nil {
		t.Fatalf("analogous error: %v", err)
	}
	if out != "#ff0080\n#ff8000\n" {
		t.Errorf("output = %q, want rose then orange", out)
	}
}

func TestHexCommand(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{arg: "255,136,0", want: "#ff8800\n"},
		{arg: "#FF8800", want: "#ff8800\n"},
		{arg: "0,0,0", want: "#000000\n"},
	}

	for _, tt := range tests {
		out, err := execute(t, "hex", tt.arg)
		if err != nil {
			t.Fatalf("hex %q error: %v", tt.arg, err)
		}
		if out != tt.want {
			t.Errorf("hex %q = %q, want %q", tt.arg, out, tt.want)
		}
	}
}

func TestDominantCommandFile(t *testing.T) {
	path := writeRedPNG(t, t.TempDir())

	out, err := execute(t, "dominant", path)
	if err != nil {
		t.Fatalf("dominant error: %v", err)
	}
	if out != "#ff0000\n" {
		t.Errorf("output = %q, want %q", out, "#ff0000\n")
	}
}

func TestDominantCommandPaletteJSON(t *testing.T) {
	path := writeRedPNG(t, t.TempDir())

	out, err := execute(t, "dominant", "--palette", "--format", "json", path)
	if err != nil {
		t.Fatalf("dominant error: %v", err)
	}

	var decoded colour.PaletteJSON
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded.Count < 1 {
		t.Errorf("count = %d, want >= 1", decoded.Count)
	}
	if decoded.Colours[0].Hex != "#ff0000" {
		t.Errorf("colours[0].hex = %q, want #ff0000", decoded.Colours[0].Hex)
	}
}

func TestDominantCommandURL(t *testing.T) {
	path := writeRedPNG(t, t.TempDir())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer server.Close()

	out, err := execute(t, "dominant", "--no-cache", server.URL+"/red.png")
	if err != nil {
		t.Fatalf("dominant URL error: %v", err)
	}
	if out != "#ff0000\n" {
		t.Errorf("output = %q, want %q", out, "#ff0000\n")
	}
}

func TestDominantCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeRedPNG(t, dir)

	out, err := execute(t, "dominant", dir)
	if err != nil {
		t.Fatalf("dominant dir error: %v", err)
	}
	if out != "#ff0000\n" {
		t.Errorf("output = %q, want %q", out, "#ff0000\n")
	}
}

func TestDominantCommandErrors(t *testing.T) {
	path := writeRedPNG(t, t.TempDir())

	if _, err := execute(t, "dominant", "--algorithm", "octree", path); err == nil {
		t.Error("unknown algorithm expected error, got nil")
	}
	if _, err := execute(t, "dominant", "/no/such/file.png"); err == nil {
		t.Error("missing file expected error, got nil")
	}
}

func TestFlagSpellingAliases(t *testing.T) {
	// US spellings normalize onto the canonical flag names.
	out, err := execute(t, "complement", "--no-color", "255,0,0")
	if err != nil {
		t.Fatalf("--no-color error: %v", err)
	}
	if out != "#00ffff\n" {
		t.Errorf("output = %q, want %q", out, "#00ffff\n")
	}

	path := writeRedPNG(t, t.TempDir())
	if _, err := execute(t, "dominant", "--palette", "--colors", "3", path); err != nil {
		t.Fatalf("--colors error: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "lescolors") {
		t.Errorf("version output = %q, want it to name the binary", out)
	}
}
