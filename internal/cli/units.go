package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/cookconv/internal/unit"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "units [unit]",
		Short: "List known units",
		Long:  "List all standard units grouped by family, or the units sharing one unit's family.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runUnits,
	}

	RootCmd.AddCommand(cmd)
}

func runUnits(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		u := unit.Parse(args[0])
		var names []string
		for _, sib := range unit.SameFamily(u) {
			names = append(names, sib.String())
		}
		b, _ := json.MarshalIndent(map[string]interface{}{
			"family": u.Family(),
			"units":  names,
		}, "", "  ")
		fmt.Println(string(b))
		return
	}

	families := map[unit.Family][]string{}
	for _, u := range unit.All() {
		families[u.Family()] = append(families[u.Family()], u.String())
	}
	b, _ := json.MarshalIndent(families, "", "  ")
	fmt.Println(string(b))
}
