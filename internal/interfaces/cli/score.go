package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/laliga-forwards/internal/interfaces/csvexport"
	"github.com/riskibarqy/laliga-forwards/internal/usecase"
)

func newScoreCommand(opts *rootOptions) *cobra.Command {
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "score FILE...",
		Short: "Score uploaded CSV or XLSX files",
		Long: `Ingests each file the way the upload endpoint does and writes
<name>_scores.csv and <name>_stats.csv into the output directory.
Files that share a name get a numeric suffix, so a/players.csv and
b/players.csv produce players_* and players_2_* exports.

A file that cannot be read is reported on stderr; the remaining files are
still scored.

Examples:
  forwards score players.csv fbref_export.csv --out results`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 {
				return fmt.Errorf("--workers must be >= 0")
			}

			files := make([]usecase.UploadFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				files = append(files, usecase.UploadFile{Name: filepath.Base(path), Data: data})
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			services, logger, err := opts.services(workers)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			items, err := services.Batch.IngestFiles(cmd.Context(), files)
			if err != nil {
				return err
			}

			failed := 0
			bases := newBaseNames()
			for _, item := range items {
				if item.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", item.Name, item.Err)
					continue
				}
				written, err := writeResult(outDir, bases.next(item.Name), item)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d players, %d skipped -> %s\n",
					item.Name, item.Result.Format, len(item.Result.Analysis.Ranking), item.Result.Skipped,
					strings.Join(written, ", "))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be scored", failed, len(items))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the exported CSV files")
	cmd.Flags().IntVar(&workers, "workers", 0, "files scored in parallel (default: BATCH_WORKERS)")
	return cmd
}

// baseNames hands out export name prefixes that are unique within one
// run. Keys are lower-cased so case-insensitive filesystems do not merge
// two exports either.
type baseNames map[string]struct{}

func newBaseNames() baseNames {
	return make(baseNames)
}

func (b baseNames) next(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "upload"
	}
	candidate := base
	for i := 2; ; i++ {
		key := strings.ToLower(candidate)
		if _, taken := b[key]; !taken {
			b[key] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeResult(outDir, base string, item usecase.BatchItem) ([]string, error) {
	var written []string
	for _, table := range []string{csvexport.TableScores, csvexport.TableStats} {
		body, err := csvexport.Render(item.Result.Analysis, table)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(outDir, base+"_"+table+".csv")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
