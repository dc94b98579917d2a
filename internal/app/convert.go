package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/configs"
)

var convertFlags struct {
	from          string
	to            string
	outputDir     string
	workers       int
	interpolation string
	maxWidth      int
	maxHeight     int
}

var convertCmd = &cobra.Command{
	Use:   "convert --to FORMAT FILE...",
	Short: "Convert files between image and text art formats",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.StringVarP(&convertFlags.from, "from", "f", "",
		"input format (default: guessed from the first file name and content)")
	f.StringVarP(&convertFlags.to, "to", "t", "", "output format")
	f.StringVarP(&convertFlags.outputDir, "output", "o",
		configs.Config.Convert.OutputDir, "output directory")
	f.IntVarP(&convertFlags.workers, "workers", "w",
		configs.Config.Convert.Workers, "files converted at once")
	f.StringVar(&convertFlags.interpolation, "interpolation",
		configs.Config.Convert.Interpolation,
		"resampling kernel of the limited formats: area, linear, nearest or box")
	f.IntVar(&convertFlags.maxWidth, "max-width",
		configs.Config.Convert.MaxWidth, "width of the limited formats box")
	f.IntVar(&convertFlags.maxHeight, "max-height",
		configs.Config.Convert.MaxHeight, "height of the limited formats box")

	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := &configs.Config.Convert
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = convertFlags.outputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = convertFlags.workers
	}
	if flags.Changed("interpolation") {
		cfg.Interpolation = convertFlags.interpolation
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = convertFlags.maxWidth
	}
	if flags.Changed("max-height") {
		cfg.MaxHeight = convertFlags.maxHeight
	}

	files, err := readFiles(args)
	if err != nil {
		return err
	}

	from, err := resolveFormat(convertFlags.from, args[0])
	if err != nil {
		return err
	}
	if convertFlags.from == "" {
		from = img2ascii.SniffTextFormat(from, files[0].Name, files[0].Bytes)
	}
	if !from.From {
		return fmt.Errorf("%w: %s is output only", img2ascii.ErrUnsupportedFormat, from.Tag)
	}
	to, err := resolveFormat(convertFlags.to, "")
	if err != nil {
		return err
	}
	if !to.To {
		return fmt.Errorf("%w: %s is input only", img2ascii.ErrUnsupportedFormat, to.Tag)
	}

	interp, err := imageutil.ParseInterpolation(cfg.Interpolation)
	if err != nil {
		return err
	}

	c := img2ascii.NewConverter(
		img2ascii.WithLogger(log.StandardLogger()),
		img2ascii.WithWorkers(cfg.Workers),
		img2ascii.WithLimit(cfg.MaxWidth, cfg.MaxHeight),
		img2ascii.WithInterpolation(interp),
	)
	if err := c.Init(); err != nil {
		return err
	}

	start := time.Now()
	out, err := c.Convert(cmd.Context(), files, from, to)
	if err != nil {
		return err
	}
	if err := writeFiles(cfg.OutputDir, out); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"files":   len(out),
		"from":    from.Tag,
		"to":      to.Tag,
		"elapsed": time.Since(start),
	}).Info("conversion done")
	return nil
}

// resolveFormat looks up a format by name, falling back to the
// extension of filename when name is empty.
func resolveFormat(name, filename string) (img2ascii.Format, error) {
	if name == "" {
		name = filepath.Ext(filename)
	}
	f, ok := img2ascii.LookupFormat(name)
	if !ok {
		return img2ascii.Format{}, fmt.Errorf("%w: %q", img2ascii.ErrUnsupportedFormat, name)
	}
	return f, nil
}

func readFiles(paths []string) ([]img2ascii.File, error) {
	files := make([]img2ascii.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, img2ascii.File{Name: filepath.Base(p), Bytes: data})
	}
	return files, nil
}

func writeFiles(dir string, files []img2ascii.File) error {
	if err := createFolder(dir); err != nil {
		return err
	}
	for _, f := range files {
		p := filepath.Join(dir, f.Name)
		if err := os.WriteFile(p, f.Bytes, 0644); err != nil {
			return err
		}
		log.WithField("path", p).Debug("file written")
	}
	return nil
}
