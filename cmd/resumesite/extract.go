package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Print the text extracted from a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		text, err := newExtractor(cfg.Extract, logger).Extract(cmd.Context(), doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

// readDocument loads a local file as an upload would present it.
func readDocument(path string) (extract.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.RawDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	mediaType := constants.MediaTypeOctetStream
	if constants.MapExtToFormat(filepath.Ext(path)) == constants.PDF {
		mediaType = constants.MediaTypePDF
	}
	return extract.RawDocument{Data: data, MediaType: mediaType, Filename: filepath.Base(path)}, nil
}
