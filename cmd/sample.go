package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"aaschema/internal/engine"
	"aaschema/internal/schema"
)

var (
	sampleSeed int64
	sampleOut  string
)

var sampleCmd = &cobra.Command{
	Use:     "sample [column_headers.tsv]",
	Short:   "Write fixture hit_data rows for testing loaders",
	GroupID: fixtureGroup,
	Long: `Generates tab separated test fixture rows for the columns of a header file
(or --table), with values shaped by each column's canonical type. The rows are
fake data for exercising loaders built on the generated mapping; they are not
part of the mapping output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src source
		var err error
		switch {
		case tableName != "":
			src, err = readTable(cmd.Context())
		case len(args) == 1:
			src, err = readFile(args[0])
		default:
			return fmt.Errorf("pass a header file or --table")
		}
		if err != nil {
			return err
		}

		f, err := GetFormat()
		if err != nil {
			return err
		}
		tables, err := GetTables()
		if err != nil {
			return err
		}
		s, err := schema.NewResolver(tables, zap.S()).Generate(src.Columns, f)
		if err != nil {
			return err
		}

		targetCount := viper.GetInt("settings.sample_count")
		start := time.Now()
		rows, err := engine.NewGenerator(sampleSeed).Rows(s.Fields, targetCount)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if sampleOut != "" {
			file, err := os.Create(sampleOut)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()
			out = file
		}

		// hit_data.tsv carries no header row.
		w := csv.NewWriter(out)
		w.Comma = '\t'
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
		zap.S().Infow("Sample written", "rows", len(rows), "columns", len(s.Fields), "elapsed", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	// CLI Flags
	sampleCmd.Flags().Int("count", 0, "Number of rows to generate (overrides config)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 1, "seed for the fake data generator")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "", "write rows to this file instead of stdout")
	addTableFlags(sampleCmd)

	viper.BindPFlag("settings.sample_count", sampleCmd.Flags().Lookup("count"))
	viper.SetDefault("settings.sample_count", 10)
}
