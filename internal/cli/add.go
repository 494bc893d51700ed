package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/cookconv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an ingredient",
		Args:  cobra.ExactArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("brand", "b", "", "Brand name")
	cmd.Flags().StringP("category", "c", "", "Category (e.g. baking, dairy)")
	cmd.Flags().Bool("system", false, "Mark as a system-provided entry")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	brand, _ := cmd.Flags().GetString("brand")
	category, _ := cmd.Flags().GetString("category")
	system, _ := cmd.Flags().GetBool("system")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ing, err := s.AddIngredient(cmd.Context(), store.AddIngredientParams{
		Name:     args[0],
		Brand:    brand,
		Category: category,
		System:   system,
	})
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(ing)
	fmt.Println(string(b))
}
