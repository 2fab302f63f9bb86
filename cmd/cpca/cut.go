package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miajio/cpca/pkg/participle"
)

func cutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "cut [text...]",
		Short:   "Cut text into words, keeping administrative names whole",
		Example: `  cpca cut --dict adcodes.csv 拱墅区祥园路300号`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.newExtractor()
			if err != nil {
				return err
			}
			c, err := participle.New(e.Index(), participle.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, text := range args {
					fmt.Fprintln(out, strings.Join(c.Cut(text), " "))
				}
				return nil
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					fmt.Fprintln(out, strings.Join(c.Cut(line), " "))
				}
			}
			return scanner.Err()
		},
	}
}
