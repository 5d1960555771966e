package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Anish177/lescolors/pkg/colour"
)

// newScratchCommand returns a throwaway command whose output goes to the
// returned buffer.
func newScratchCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

// setFormat sets the global output format for the duration of a test.
func setFormat(t *testing.T, format string) {
	t.Helper()
	old := flagFormat
	flagFormat = format
	t.Cleanup(func() { flagFormat = old })
}

func TestWriteColoursHex(t *testing.T) {
	setFormat(t, "hex")
	cmd, buf := newScratchCommand()

	err := writeColours(cmd, []string{"a", "b"}, colour.RGB{R: 255, G: 0, B: 0}, colour.RGB{R: 0, G: 0, B: 255})
	if err != nil {
		t.Fatalf("writeColours() error: %v", err)
	}
	if got, want := buf.String(), "#ff0000\n#0000ff\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteColoursRGB(t *testing.T) {
	setFormat(t, "rgb")
	cmd, buf := newScratchCommand()

	if err := writeColours(cmd, nil, colour.RGB{R: 255, G: 0, B: 128}); err != nil {
		t.Fatalf("writeColours() error: %v", err)
	}
	if got, want := buf.String(), "rgb(255, 0, 128)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteColoursJSONSingle(t *testing.T) {
	setFormat(t, "json")
	cmd, buf := newScratchCommand()

	if err := writeColours(cmd, nil, colour.RGB{R: 255, G: 0, B: 0}); err != nil {
		t.Fatalf("writeColours() error: %v", err)
	}

	// A single unlabelled colour encodes as an object, not an array.
	var entry colourEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, buf.String())
	}
	if entry.Hex != "#ff0000" {
		t.Errorf("hex = %q, want #ff0000", entry.Hex)
	}
	if entry.RGB != (colour.RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("rgb = %+v, want red", entry.RGB)
	}
}

func TestWriteColoursJSONLabelled(t *testing.T) {
	setFormat(t, "json")
	cmd, buf := newScratchCommand()

	err := writeColours(cmd, []string{"counter-clockwise", "clockwise"},
		colour.RGB{R: 255, G: 0, B: 128}, colour.RGB{R: 255, G: 128, B: 0})
	if err != nil {
		t.Fatalf("writeColours() error: %v", err)
	}

	var entries []colourEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "counter-clockwise" || entries[1].Label != "clockwise" {
		t.Errorf("labels = %q, %q", entries[0].Label, entries[1].Label)
	}
	if entries[0].Hex != "#ff0080" {
		t.Errorf("entries[0].Hex = %q, want #ff0080", entries[0].Hex)
	}
}

func TestWriteColoursUnsupportedFormat(t *testing.T) {
	setFormat(t, "yaml")
	cmd, _ := newScratchCommand()

	if err := writeColours(cmd, nil, colour.RGB{R: 1, G: 2, B: 3}); err == nil {
		t.Error("unsupported format expected error, got nil")
	}
}

func TestWritePalette(t *testing.T) {
	palette := colour.NewPaletteWithWeights(
		[]colour.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}},
		[]float64{0.75, 0.25},
	)

	setFormat(t, "hex")
	cmd, buf := newScratchCommand()
	if err := writePalette(cmd, palette); err != nil {
		t.Fatalf("writePalette() error: %v", err)
	}
	if got, want := buf.String(), "#ff0000\n#0000ff\n"; got != want {
		t.Errorf("hex output = %q, want %q", got, want)
	}

	setFormat(t, "json")
	cmd, buf = newScratchCommand()
	if err := writePalette(cmd, palette); err != nil {
		t.Fatalf("writePalette() error: %v", err)
	}

	var decoded colour.PaletteJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output invalid: %v\n%s", err, buf.String())
	}
	if decoded.Count != 2 {
		t.Errorf("count = %d, want 2", decoded.Count)
	}
	if !strings.EqualFold(decoded.Colours[0].Hex, "#ff0000") {
		t.Errorf("colours[0].hex = %q, want #ff0000", decoded.Colours[0].Hex)
	}
}

func TestLabel(t *testing.T) {
	labels := []string{"first"}
	if got := label(labels, 0); got != "first" {
		t.Errorf("label(0) = %q, want first", got)
	}
	if got := label(labels, 1); got != "" {
		t.Errorf("label(1) = %q, want empty", got)
	}
	if got := label(nil, 0); got != "" {
		t.Errorf("label(nil, 0) = %q, want empty", got)
	}
}
