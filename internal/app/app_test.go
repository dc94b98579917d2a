package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/configs"
)

// resetFlags puts every flag of cmd and its subcommands back to its
// default, since flag values outlive a run.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with fresh flags.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	saved := configs.Config
	resetFlags(rootCmd)
	t.Cleanup(func() {
		configs.Config = saved
		configPath = ""
		resetFlags(rootCmd)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "TAG")
	for _, f := range img2ascii.Formats() {
		assert.Contains(t, out, f.Tag)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "grad.png")
	require.NoError(t, imageutil.SaveImage(imageutil.CreateGradientImage(4, 2), src))

	outDir := filepath.Join(dir, "out")
	_, err := execute(t, "convert", "--from", "png", "--to", "textColor", "-w", "2", "-o", outDir, src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "grad_colored.txt"))
	require.NoError(t, err)
	b := img2ascii.Decode(string(data), img2ascii.Color)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, img2ascii.White, b.At(3, 1))
}

func TestConvertCommandTextToImage(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "art.txt", []byte("@ \n"))

	_, err := execute(t, "convert", "--from", "textAscii", "--to", "bmp", "-o", dir, src)
	require.NoError(t, err)

	img, err := imageutil.LoadImage(filepath.Join(dir, "art.bmp"))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, imageutil.White, img.GetRGB(0, 0))
	assert.Equal(t, imageutil.RGB{}, img.GetRGB(1, 0))
}

func TestConvertCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wide.png")
	require.NoError(t, imageutil.SaveImage(imageutil.CreateGradientImage(40, 20), src))
	cfg := writeFile(t, dir, "config.toml", []byte(`
[convert]
max_width = 10
max_height = 10
interpolation = "box"
`))

	_, err := execute(t, "-c", cfg, "convert", "--from", "png", "--to", "textLimited", "-o", dir, src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "wide_limited.txt"))
	require.NoError(t, err)
	b := img2ascii.Decode(string(data), img2ascii.Grayscale)
	assert.Equal(t, 10, b.Width)
	assert.Equal(t, 5, b.Height)
}

func TestConvertCommandErrors(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "art.txt", []byte("@\n"))

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown output", []string{"--from", "textAscii", "--to", "docx"}, img2ascii.ErrUnsupportedFormat},
		{"output only", []string{"--from", "textLimited", "--to", "png"}, img2ascii.ErrUnsupportedFormat},
		{"input only", []string{"--from", "textAscii", "--to", "webp"}, img2ascii.ErrUnsupportedFormat},
		{"bad kernel", []string{"--from", "textAscii", "--to", "png", "--interpolation", "cubic"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"convert", "-o", dir, "--interpolation", "linear"}, tt.args...)
			_, err := execute(t, append(args, src)...)
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	_, err := execute(t, "convert", "--from", "textAscii", "--to", "png", "--interpolation", "linear",
		"-o", dir, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "art.txt", []byte("@.\n:\n"))
	out := filepath.Join(dir, "art.png")

	_, err := execute(t, "preview", "--font", "", "-s", "2", "-o", out, src)
	require.NoError(t, err)

	img, err := imageutil.LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 2*img2ascii.GlyphWidth*2, img.Width())
	assert.Equal(t, 2*img2ascii.GlyphHeight*2, img.Height())
}

func TestPreviewCommandEmpty(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "empty.txt", nil)

	_, err := execute(t, "preview", "--font", "", "-o", filepath.Join(dir, "empty.png"), src)
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	f, err := resolveFormat("", "photo.JPG")
	require.NoError(t, err)
	assert.Equal(t, img2ascii.FormatJPEG.Tag, f.Tag)

	f, err = resolveFormat("textColor", "photo.png")
	require.NoError(t, err)
	assert.Equal(t, img2ascii.FormatTextColor.Tag, f.Tag)

	_, err = resolveFormat("", "noext")
	assert.ErrorIs(t, err, img2ascii.ErrUnsupportedFormat)
}

func TestConvertCommandGuessesColorInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dot.png")
	require.NoError(t, imageutil.SaveImage(imageutil.CreateSolidImage(1, 1, imageutil.RGB{R: 10, G: 20, B: 30}), src))

	_, err := execute(t, "convert", "--from", "png", "--to", "textColor", "-o", dir, src)
	require.NoError(t, err)
	colored := filepath.Join(dir, "dot_colored.txt")

	// No --from: the .txt extension alone would say grayscale
	_, err = execute(t, "convert", "--to", "bmp", "-o", dir, colored)
	require.NoError(t, err)

	img, err := imageutil.LoadImage(filepath.Join(dir, "dot_colored.bmp"))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Width())
	assert.Equal(t, imageutil.RGB{R: 10, G: 20, B: 30}, img.GetRGB(0, 0))
}

func TestPreviewCommandGuessesColorInput(t *testing.T) {
	dir := t.TempDir()
	text := img2ascii.Encode(img2ascii.Bitmap{Width: 1, Height: 1, Pix: []img2ascii.RGB{{R: 200}}}, img2ascii.Color)
	src := writeFile(t, dir, "dot_colored.txt", []byte(text))
	out := filepath.Join(dir, "dot.png")

	_, err := execute(t, "preview", "-s", "1", "-o", out, src)
	require.NoError(t, err)

	img, err := imageutil.LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, img2ascii.GlyphWidth, img.Width())

	var lit []imageutil.RGB
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if c := img.GetRGB(x, y); c != (imageutil.RGB{}) {
				lit = append(lit, c)
			}
		}
	}
	require.NotEmpty(t, lit)
	for _, c := range lit {
		assert.Equal(t, imageutil.RGB{R: 200}, c)
	}
}

func TestConfigFileCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	_, err := execute(t, "-c", path, "formats")
	require.NoError(t, err)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level")

	// An existing file is read, not overwritten
	require.NoError(t, os.WriteFile(path, []byte("[main]\nlog_level = \"warn\"\n"), 0600))
	_, err = execute(t, "-c", path, "formats")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[main]\nlog_level = \"warn\"\n", string(data))
}
