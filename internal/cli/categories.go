package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List ingredient categories",
		Run:   runCategories,
	}

	RootCmd.AddCommand(cmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cats, err := s.Categories(cmd.Context())
	if err != nil {
		exitErr("list categories", err)
	}

	b, _ := json.MarshalIndent(cats, "", "  ")
	fmt.Println(string(b))
}
