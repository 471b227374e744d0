package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

func (a *app) pathsCmd() *cobra.Command {
	var pad string
	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "List every minimal route between two buttons",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kp *keypad.Keypad
			switch pad {
			case "numeric":
				kp = keypad.Numeric()
			case "directional":
				kp = keypad.Directional()
			default:
				return fmt.Errorf("unknown pad %q: want numeric or directional", pad)
			}
			from, err := button(args[0])
			if err != nil {
				return err
			}
			to, err := button(args[1])
			if err != nil {
				return err
			}
			ps, err := paths.Between(kp, from, to)
			if err != nil {
				return err
			}
			for _, p := range ps {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d turns\n", p, p.Turns())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pad, "pad", "p", "numeric", "Keypad: numeric or directional")
	return cmd
}

func button(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("button %q must be a single symbol", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}
