package cmd

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"aaschema/internal/schema"
)

var generateCmd = &cobra.Command{
	Use:     "generate [column_headers.tsv ...]",
	Short:   "Map feed columns to output format types",
	GroupID: mappingGroup,
	Long: `Reads the header of each column_headers.tsv file (or of --table) and prints
the column name to type mapping for the configured format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && tableName == "" {
			return fmt.Errorf("pass at least one header file or --table")
		}

		f, err := GetFormat()
		if err != nil {
			return err
		}
		output := viper.GetString("settings.output")
		if !validOutput(output) {
			return fmt.Errorf("unsupported output %q (want one of %v)", output, outputFormats)
		}

		tables, err := GetTables()
		if err != nil {
			return err
		}
		resolver := schema.NewResolver(tables, zap.S())

		var sources []source
		if tableName != "" {
			src, err := readTable(cmd.Context())
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}

		// Progress only pays off for batches. It draws on stderr: stdout
		// carries the mapping.
		var progress *uiprogress.Progress
		var bar *uiprogress.Bar
		if len(args) > 1 {
			progress = uiprogress.New()
			progress.SetOut(cmd.ErrOrStderr())
			bar = progress.AddBar(len(args)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Reading headers: "
			})
			progress.Start()
		}
		for _, path := range args {
			src, err := readFile(path)
			if err != nil {
				if progress != nil {
					progress.Stop()
				}
				return err
			}
			sources = append(sources, src)
			if bar != nil {
				bar.Incr()
			}
		}
		if progress != nil {
			progress.Stop()
		}

		mappings := make([]mapping, 0, len(sources))
		for _, src := range sources {
			s, err := resolver.Generate(src.Columns, f)
			if err != nil {
				return err
			}
			entries, err := mappingEntries(s, viper.GetBool("settings.sanitize"))
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
			mappings = append(mappings, mapping{Source: src.Name, Entries: entries})
		}
		return writeMappings(cmd.OutOrStdout(), mappings, output)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	// CLI Flags
	generateCmd.Flags().StringP("output", "o", "", "mapping table encoding: json, yaml or tsv")
	generateCmd.Flags().Bool("sanitize", false, "rewrite column names into Avro/BigQuery identifiers")
	addTableFlags(generateCmd)

	viper.BindPFlag("settings.output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("settings.sanitize", generateCmd.Flags().Lookup("sanitize"))
	viper.SetDefault("settings.output", "json")
}
