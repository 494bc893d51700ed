package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/cookconv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ingredients",
		Run:   runList,
	}

	cmd.Flags().StringP("name", "n", "", "Filter by name substring")
	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().String("system", "", "Filter by origin: true (system) or false (user)")
	cmd.Flags().IntP("limit", "l", 50, "Max results")
	cmd.Flags().Bool("names-only", false, "Only output ingredient names")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	category, _ := cmd.Flags().GetString("category")
	system, _ := cmd.Flags().GetString("system")
	limit, _ := cmd.Flags().GetInt("limit")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ingredients, err := s.List(cmd.Context(), store.ListParams{
		Name:     name,
		Category: category,
		System:   system,
		Limit:    limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if namesOnly {
		for _, ing := range ingredients {
			fmt.Println(ing.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(ingredients, "", "  ")
	fmt.Println(string(b))
}
