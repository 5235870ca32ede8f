// Package categories handles the category listing command
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t-8ch/burp/internal/catalog"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the package categories the AUR accepts",
	Long:  `List every category name that can be passed to --category when uploading.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range catalog.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
