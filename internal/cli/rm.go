package cli

import (
	"fmt"

	"github.com/rcliao/cookconv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "Delete an ingredient or one of its facts",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	cmd.Flags().Int("fact", 0, "Delete only the fact with this seq number")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	seq, _ := cmd.Flags().GetInt("fact")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	err = s.Rm(cmd.Context(), store.RmParams{
		Name: args[0],
		Seq:  seq,
	})
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"name":%q}`+"\n", args[0])
}
