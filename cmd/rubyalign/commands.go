package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rubyalign/furigana"
	"rubyalign/kana"
	"rubyalign/logger"
	"rubyalign/pipeline"
	"rubyalign/tokenize"
)

func alignCmd(a *app) *cobra.Command {
	var format, dict string
	cmd := &cobra.Command{
		Use:   "align TITLE [READING]",
		Short: "Split a title into ruby segments",
		Long: "Split TITLE into segments annotated with the part of READING each one is read as.\n" +
			"Without READING, the reading is derived with the kagome morphological analyzer.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			var reading string
			if len(args) == 2 {
				reading = args[1]
			} else {
				d := a.cfg.Dict
				if cmd.Flags().Changed("dict") {
					d = dict
				}
				tk, err := tokenize.New(tokenize.DictName(d))
				if err != nil {
					return err
				}
				reading, err = tk.Reading(cmd.Context(), title)
				if err != nil {
					return fmt.Errorf("derive reading: %w", err)
				}
				a.log.Debug("derived reading", "title", title, "reading", reading, "dict", tk.Dict())
			}
			style := a.cfg.Format
			if cmd.Flags().Changed("format") {
				style = format
			}
			out, err := furigana.Format(a.aligner.Resolve(title, reading), furigana.Style(style))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(furigana.StyleBrackets), "output format: brackets, html, terminal, json")
	cmd.Flags().StringVar(&dict, "dict", string(tokenize.DictIPA), "kagome dictionary used when READING is omitted: ipa, uni")
	return cmd
}

func chunksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chunks TITLE",
		Short: "Show how a title is split into kana anchors and text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(furigana.Chunk(args[0]))
		},
	}
}

func romajiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "romaji KANA...",
		Short: "Transliterate kana to romaji",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				fmt.Fprintln(cmd.OutOrStdout(), kana.ToRomaji(s))
			}
			return nil
		},
	}
}

func batchCmd(a *app) *cobra.Command {
	var (
		workers int
		format  string
		dump    bool
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Resolve every title<TAB>reading line of FILE (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			items, err := pipeline.ReadTSV(in)
			if err != nil {
				return err
			}

			n := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				n = workers
			}
			results, err := pipeline.NewRunner(a.aligner, n, a.log).Run(cmd.Context(), items)
			if err != nil {
				return err
			}

			style := a.cfg.Format
			if cmd.Flags().Changed("format") {
				style = format
			}
			for _, r := range results {
				out, err := furigana.Format(r.Segments, furigana.Style(style))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.Item.Line, out)
			}

			if dump {
				if err := logger.InitLogs(a.cfg.LogsDir); err != nil {
					return err
				}
				path, err := logger.LogJSON(a.cfg.LogsDir, "batch_results", map[string]any{
					"summary": pipeline.Summarize(results),
					"results": results,
				})
				if err != nil {
					return fmt.Errorf("dump results: %w", err)
				}
				a.log.Info("results written", "path", path)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent workers (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", string(furigana.StyleBrackets), "output format: brackets, html, terminal, json")
	cmd.Flags().BoolVar(&dump, "dump", false, "write all results as JSON into the logs directory")
	return cmd
}
