package cmd

import (
	"fmt"

	"scdb-loader/feature/entity"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item <path>",
	Short: "Parse a single entity definition and print it as JSON",
	Long:  `Decodes one EntityClassDefinition file without resolving any reference. Useful when checking how a new file version is read.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := entity.ParseItemFile(args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}
