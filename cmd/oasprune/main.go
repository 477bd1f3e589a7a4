package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reiwata/oasprune"
	"github.com/reiwata/oasprune/specio"
)

var (
	// Global flags
	inPath  string
	strict  bool
	verbose bool

	// delete flags
	opIDs     []string
	outPath   string
	outFormat string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "oasprune",
	Short: "Remove operations and orphaned components from OpenAPI documents",
	Long: `oasprune deletes operations from an OpenAPI document and garbage-collects
every shared component and tag that only those operations kept alive.
Components still referenced by surviving operations are preserved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	},
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations in a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := specio.ReadFile(inPath, specio.Options{Strict: strict})
		if err != nil {
			return err
		}
		paths := make([]string, 0, len(doc.Paths))
		for p := range doc.Paths {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, path := range paths {
			item := doc.Paths[path]
			if item == nil {
				continue
			}
			for _, mo := range item.Operations() {
				fmt.Printf("%-7s %-40s %s", strings.ToUpper(mo.Method), path, mo.Operation.OperationID)
				if len(mo.Operation.Tags) > 0 {
					fmt.Printf("  [%s]", strings.Join(mo.Operation.Tags, ", "))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete operations by operationId and sweep unreachable components",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := specio.ReadFile(inPath, specio.Options{Strict: strict})
		if err != nil {
			return err
		}
		ed := oasprune.New(doc)
		removed := 0
		for _, id := range opIDs {
			if !ed.DeleteOperation(id) {
				log.Warn().Str("operationId", id).Msg("no such operation")
				continue
			}
			log.Debug().Str("operationId", id).Msg("operation removed")
			removed++
		}
		if removed == 0 {
			return fmt.Errorf("none of the requested operations matched")
		}

		target := outPath
		if target == "" {
			target = inPath
		}
		format := specio.FormatForPath(target)
		if outFormat != "" {
			if format, err = specio.ParseFormat(outFormat); err != nil {
				return err
			}
		}
		out, err := specio.Marshal(ed.Document(), format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, out, 0o644); err != nil {
			return err
		}
		log.Info().Int("removed", removed).Str("file", target).Msg("document written")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inPath, "file", "f", "", "OpenAPI document to operate on (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject YAML documents with duplicate mapping keys")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	deleteCmd.Flags().StringArrayVar(&opIDs, "op", nil, "operationId to delete (repeatable)")
	deleteCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (defaults to rewriting the input)")
	deleteCmd.Flags().StringVar(&outFormat, "format", "", "output format: yaml or json (defaults to the output extension)")
	_ = deleteCmd.MarkFlagRequired("op")

	rootCmd.AddCommand(opsCmd, deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oasprune:", err)
		os.Exit(1)
	}
}
