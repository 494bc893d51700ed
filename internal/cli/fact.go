package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/cookconv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fact [ingredient] [from] [to]",
		Short: "Record a conversion fact for an ingredient",
		Long: `Record a conversion fact, e.g.:

  cookconv fact flour "1 cup" "120 g"
  cookconv fact butter "1 tbsp" "14 g"
  cookconv fact egg "1 egg/eggs" "50 g"

Both measures are "AMOUNT UNIT"; amounts accept fractions and mixed numbers.`,
		Args: cobra.ExactArgs(3),
		Run:  runFact,
	}

	RootCmd.AddCommand(cmd)
}

func runFact(cmd *cobra.Command, args []string) {
	fromAmount, fromUnit, err := parseMeasure(args[1])
	if err != nil {
		exitErr("fact", err)
	}
	toAmount, toUnit, err := parseMeasure(args[2])
	if err != nil {
		exitErr("fact", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	conv, err := s.AddConversion(cmd.Context(), store.AddConversionParams{
		Ingredient: args[0],
		FromAmount: fromAmount,
		FromUnit:   fromUnit,
		ToAmount:   toAmount,
		ToUnit:     toUnit,
	})
	if err != nil {
		exitErr("fact", err)
	}

	b, _ := json.Marshal(conv)
	fmt.Println(string(b))
}
