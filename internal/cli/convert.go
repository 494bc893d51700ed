package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/cookconv/internal/engine"
	"github.com/rcliao/cookconv/internal/quantity"
	"github.com/rcliao/cookconv/internal/unit"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert [amount] [from] [to] [ingredient]",
		Short: "Convert a quantity between units",
		Long: `Convert a quantity between units, e.g.:

  cookconv convert "1 1/2" cup ml
  cookconv convert 2 cup g flour
  cookconv convert 3 egg/eggs g egg

Same-family volume and weight conversions need no ingredient; everything else
resolves through the ingredient's recorded facts. An unresolvable pair is
reported as "no conversion available", not an error.`,
		Args: cobra.RangeArgs(3, 4),
		Run:  runConvert,
	}

	cmd.Flags().Int("max-denominator", quantity.DefaultMaxDenominator, "Largest denominator for fraction output")

	RootCmd.AddCommand(cmd)
}

type convertResult struct {
	OK         bool    `json:"ok"`
	Amount     float64 `json:"amount,omitempty"`
	Formatted  string  `json:"formatted,omitempty"`
	Display    string  `json:"display,omitempty"`
	Ingredient string  `json:"ingredient,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) {
	maxDen, _ := cmd.Flags().GetInt("max-denominator")

	amount, ok := quantity.Parse(args[0])
	if !ok {
		exitErr("convert", fmt.Errorf("invalid amount %q", args[0]))
	}
	from := unit.Parse(args[1])
	to := unit.Parse(args[2])

	var facts []engine.Fact
	var ingredient string
	if len(args) == 4 {
		ingredient = args[3]
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		ing, err := s.Get(cmd.Context(), ingredient)
		if err != nil {
			exitErr("convert", err)
		}
		facts = ing.Facts()
	}

	result, ok := engine.Convert(amount, from, to, facts)
	if !ok {
		b, _ := json.Marshal(convertResult{
			OK:         false,
			Ingredient: ingredient,
			Error:      fmt.Sprintf("no conversion available from %s to %s", from, to),
		})
		fmt.Println(string(b))
		return
	}

	formatted := quantity.Format(result, maxDen)
	b, _ := json.Marshal(convertResult{
		OK:         true,
		Amount:     result,
		Formatted:  formatted,
		Display:    fmt.Sprintf("%s %s = %s %s", args[0], from.Label(amount), formatted, to.Label(result)),
		Ingredient: ingredient,
	})
	fmt.Println(string(b))
}
