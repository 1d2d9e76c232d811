package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/pipeline"
	"github.com/katalvlaran/homology/simplex"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

var square = []string{
	"--point", "0,0", "--point", "1,0", "--point", "1,1", "--point", "0,1",
}

func TestBetti_PointFlags(t *testing.T) {
	out, err := run(t, "", append([]string{"betti", "--radius", "0.5"}, square...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Your drawing has 1 hole.")
	assert.Contains(t, out, "β_0 = 1")
	assert.Contains(t, out, "β_1 = 1")
}

func TestBetti_FileForms(t *testing.T) {
	cases := map[string]string{
		"seq.yaml":  "- [0, 0]\n- [1, 0]\n- [1, 1]\n- [0, 1]\n",
		"map.yaml":  "radius: 0.5\npoints:\n  - [0, 0]\n  - [1, 0]\n  - [1, 1]\n  - [0, 1]\n",
		"map.json":  `{"radius": 0.5, "points": [[0, 0], [1, 0], [1, 1], [0, 1]]}`,
		"flow.json": `[[0, 0], [1, 0], [1, 1], [0, 1]]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, content)
			out, err := run(t, "", "betti", path, "--radius", "0.5", "-f", "json")
			require.NoError(t, err)

			var res pipeline.Result
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, 4, res.Vertices)
			assert.Equal(t, 1, res.Betti.Holes())
		})
	}
}

func TestBetti_FileRadiusUnlessFlagged(t *testing.T) {
	doc := "radius: 0.5\npoints: [[0, 0], [1, 0], [1, 1], [0, 1]]\n"

	out, err := run(t, doc, "betti", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "β_1 = 1")

	// r = 0.8 fills the square with triangles.
	out, err = run(t, doc, "betti", "-", "--radius", "0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "β_1 = 0")
}

func TestBetti_TwoComponents(t *testing.T) {
	args := append([]string{"betti", "--radius", "0.5", "--point", "-5,0"}, square...)
	out, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "β_0 = 2")
	assert.Contains(t, out, "have 0 and 1 holes, respectively.")

	out, err = run(t, "", append(args, "--split=false")...)
	require.NoError(t, err)
	assert.NotContains(t, out, "respectively")
}

func TestBetti_Errors(t *testing.T) {
	_, err := run(t, "", "betti")
	require.ErrorIs(t, err, errNoPoints)

	_, err = run(t, "", "betti", "--point", "1,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `--point "1,x"`)

	_, err = run(t, "", "betti", writeFile(t, "bad.yaml", "radius: 1\n"), "-f", "xml")
	require.Error(t, err)

	_, err = run(t, "", "betti", writeFile(t, "scalar.yaml", "42\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want a sequence or a mapping")

	_, err = run(t, "", "betti", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSplit_Table(t *testing.T) {
	args := append([]string{"split", "--radius", "0.5", "--point", "5,5"}, square...)
	out, err := run(t, "", args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 component(s), betti=[2 1]", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "component 0: leftmost=0 vertices=4 betti=[1 1]"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "component 1: leftmost=5 vertices=1 betti=[1]"), lines[2])
}

func TestImage(t *testing.T) {
	const size = 40
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.Gray{Y: 255}
			if x < 4 || y < 4 || x >= size-4 || y >= size-4 {
				c = color.Gray{Y: 0}
			}
			img.SetGray(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "ring.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out, err := run(t, "", "image", path, "--block", "4", "--radius", "0.5", "-f", "json")
	require.NoError(t, err)

	var res pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 36, res.Vertices)
	assert.Equal(t, 1, res.Strokes)
	assert.Equal(t, 1, res.Betti.Components())
	assert.Equal(t, 1, res.Betti.Holes())

	_, err = run(t, "", "image", writeFile(t, "not.png", "hello"))
	require.Error(t, err)
}

func TestConfigFromEnvAndFile(t *testing.T) {
	t.Setenv("HOMOLOGY_ANALYSIS_FORMAT", "json")
	out, err := run(t, "", append([]string{"betti", "--radius", "0.5"}, square...)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)

	cfg := writeFile(t, "cfg.yaml", "analysis:\n  radius: 0.5\n  format: text\n")
	out, err = run(t, "", append([]string{"--config", cfg, "betti"}, square...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "β_1 = 1")

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "betti", "--point", "0,0")
	require.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	out, err := run(t, "", "config", "init", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "analysis:")
	assert.Contains(t, out, "radius: 0.8")

	path := filepath.Join(t.TempDir(), ".homology.yaml")
	_, err = run(t, "", "config", "init", "--output", path)
	require.NoError(t, err)
	_, err = run(t, "", "config", "init", "--output", path)
	require.Error(t, err, "existing file must not be overwritten")

	out, err = run(t, "", "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := writeFile(t, "bad.yaml", "analysis:\n  connectivity: 6\n")
	_, err = run(t, "", "config", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "homology dev"), out)
}

func TestBetti_Limits(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 18; i++ {
		fmt.Fprintf(&sb, "- [%g, 0]\n", float64(i)*0.001)
	}

	_, err := run(t, sb.String(), "betti", "-", "--radius", "10")
	require.ErrorIs(t, err, simplex.ErrTooLarge)

	_, err = run(t, "", append([]string{"betti", "--radius", "0.5", "--max-vertices", "3"}, square...)...)
	require.ErrorIs(t, err, simplex.ErrTooLarge)

	out, err := run(t, "", append([]string{"betti", "--radius", "0.5", "--max-simplices", "8"}, square...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "β_1 = 1")
}
