package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
)

func newTemplateCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:       "template KIND",
		Short:     "Print a CSV template: " + strings.Join(ingest.TemplateKinds, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: ingest.TemplateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, ok := ingest.Template(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q (want one of %s)", args[0], strings.Join(ingest.TemplateKinds, ", "))
			}

			if outPath == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), body)
				return err
			}
			if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
