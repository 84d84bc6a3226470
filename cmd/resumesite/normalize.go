package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/resume-site/internal/llm"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <pdf>",
	Short: "Print the record the model produces for a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.LLM.APIKey == "" {
			return errors.New("LLM_API_KEY is required")
		}
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		text, err := newExtractor(cfg.Extract, logger).Extract(cmd.Context(), doc)
		if err != nil {
			return err
		}

		normalizer, err := newNormalizer(cfg.LLM, logger)
		if err != nil {
			return err
		}
		_, raw, err := normalizer.Normalize(cmd.Context(), llm.NormalizeRequest{Text: text})
		if err != nil {
			return err
		}

		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
		return err
	},
}
