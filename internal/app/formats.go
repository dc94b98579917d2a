package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tKIND\tEXTENSION\tMIME\tFROM\tTO\tNAME")
	for _, f := range img2ascii.Formats() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Tag, f.Kind, f.Extension, f.MIME, yesNo(f.From), yesNo(f.To), f.Name)
	}
	return w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
