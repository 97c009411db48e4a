package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/laliga-forwards/internal/platform/tabular"
)

func newDiagnoseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose FILE",
		Short: "Explain why a CSV file does not parse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tabular.Diagnose(data).String())
			return err
		},
	}
}
