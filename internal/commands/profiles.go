package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured color profiles with their HSV bounds and sRGB swatches",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(cfg.ColorProfiles))
		for name := range cfg.ColorProfiles {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			profile := cfg.ColorProfiles[name]
			marker := " "
			if name == cfg.BackgroundColor {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s  lower=%.0f upper=%.0f\n",
				marker, name, profile.Swatch(), profile.Lower, profile.Upper)
		}
		fmt.Println("\n* background color, used for cropping only")
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
