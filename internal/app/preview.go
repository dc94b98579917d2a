package app

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/configs"
)

var previewFlags struct {
	color  bool
	scale  int
	font   string
	output string
}

var previewCmd = &cobra.Command{
	Use:   "preview -o OUTPUT FILE",
	Short: "Render a text art file as an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	f := previewCmd.Flags()
	f.BoolVar(&previewFlags.color, "color", false,
		"read color runs (default: guessed from the file name and content)")
	f.IntVarP(&previewFlags.scale, "scale", "s",
		configs.Config.Preview.Scale, "pixels per glyph dot")
	f.StringVar(&previewFlags.font, "font",
		configs.Config.Preview.Font, "TrueType font (default: Go Mono)")
	f.StringVarP(&previewFlags.output, "output", "o", "", "output image")

	_ = previewCmd.MarkFlagRequired("output")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := &configs.Config.Preview
	flags := cmd.Flags()
	if flags.Changed("scale") {
		cfg.Scale = previewFlags.scale
	}
	if flags.Changed("font") {
		cfg.Font = previewFlags.font
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	mode := img2ascii.Color
	if !previewFlags.color {
		f, ok := img2ascii.LookupFormat(filepath.Ext(args[0]))
		if !ok || f.Kind != img2ascii.KindText {
			f = img2ascii.FormatText
		}
		mode = img2ascii.SniffTextFormat(f, args[0], data).Mode
	}

	fb, err := img2ascii.LoadFontBitmaps(cfg.Font)
	if err != nil {
		return err
	}

	img := img2ascii.RenderPreview(string(data), mode, fb, cfg.Scale)
	if img.Bounds().Empty() {
		return errors.New("nothing to render")
	}
	if err := imageutil.SaveImage(img, previewFlags.output); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"path":  previewFlags.output,
		"mode":  mode,
		"font":  fb.Name(),
		"width": img.Bounds().Dx(),
	}).Info("preview written")
	return nil
}
