// seehuhn.de/go/outline - trace bitmaps into vector outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with the given arguments and returns
// what was written to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDemoSVG(t *testing.T) {
	out, err := run(t, "demo", "basic_single", "--scale", "10", "--fill", "#ff0000")
	if err != nil {
		t.Fatal(err)
	}

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1" width="10" height="10">
<path fill="#ff0000" fill-rule="evenodd" d="M0,0h1v1h-1z"/>
</svg>
`
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestDemoMargin(t *testing.T) {
	out, err := run(t, "demo", "nested_ring", "--margin", "2", "--fill-rule", "nonzero")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`viewBox="-2 -2 7 7"`,
		`fill-rule="nonzero"`,
		`d="M0,0h3v3h-3zM2,1h-1v1h1z"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s:\n%s", want, out)
		}
	}
}

func TestDemoList(t *testing.T) {
	out, err := run(t, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "corner_mixed6\n") {
		t.Errorf("test case missing from list:\n%s", out)
	}
}

func TestDemoUnknown(t *testing.T) {
	if _, err := run(t, "demo", "no_such_case"); err == nil {
		t.Error("unknown test case accepted")
	}
}

func TestDemoGrid(t *testing.T) {
	out, err := run(t, "demo", "basic_single", "--grid")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "#") {
		t.Errorf("foreground cell missing:\n%s", out)
	}
}

func TestTraceImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetGray(1, 0, color.Gray{Y: 0})
	img.SetGray(1, 1, color.Gray{Y: 0x20})

	fname := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "trace", fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `d="M1,0h1v2h-1z"`) {
		t.Errorf("wrong outline:\n%s", out)
	}

	out, err = run(t, "trace", fname, "--invert")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `d="M0,0h1v2h-1zM2,0h1v2h-1z"`) {
		t.Errorf("wrong inverted outline:\n%s", out)
	}
}

func TestTraceMissingFile(t *testing.T) {
	if _, err := run(t, "trace", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestConfigFile(t *testing.T) {
	fname := writeFile(t, "outline.toml", "[output]\nscale = 3.0\nfill = \"#123456\"\n")

	out, err := run(t, "--config", fname, "demo", "basic_single", "--fill", "#abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `width="3"`) {
		t.Errorf("scale from config file not used:\n%s", out)
	}
	if !strings.Contains(out, `fill="#abcdef"`) {
		t.Errorf("fill flag does not override the config file:\n%s", out)
	}
}

func TestQR(t *testing.T) {
	out, err := run(t, "qr", "https://seehuhn.de/")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<path fill="#000000" fill-rule="evenodd" d="M0,0h7v7h-7z`) {
		t.Errorf("unexpected QR outline:\n%.200s", out)
	}
}

func TestEncodeQR(t *testing.T) {
	data, size, err := encodeQR("hello", "low", false)
	if err != nil {
		t.Fatal(err)
	}
	if size != 21 || len(data) != size*size {
		t.Fatalf("got size %d with %d cells, want version 1 (21x21)", size, len(data))
	}
	// top left finder pattern and its separator
	at := func(x, y int) byte { return data[y*size+x] }
	if at(0, 0) != 1 || at(6, 0) != 1 || at(1, 1) != 0 || at(3, 3) != 1 || at(7, 0) != 0 {
		t.Errorf("finder pattern missing")
	}

	if _, _, err := encodeQR("hello", "extreme", false); err == nil {
		t.Error("unknown recovery level accepted")
	}
}

func TestPDF(t *testing.T) {
	if _, err := run(t, "demo", "basic_single", "--format", "pdf"); err == nil {
		t.Error("PDF output to stdout accepted")
	}

	fname := filepath.Join(t.TempDir(), "out.pdf")
	if _, err := run(t, "demo", "nested_ring", "--format", "pdf", "-o", fname, "--scale", "5"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("output is not a PDF file: %.20q", data)
	}
}

func TestSVGFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.svg")
	out, err := run(t, "demo", "basic_row", "-o", fname)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("unexpected output on stdout: %q", out)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `d="M2,0h4v1h-4z"`) {
		t.Errorf("wrong SVG file:\n%s", data)
	}
}
