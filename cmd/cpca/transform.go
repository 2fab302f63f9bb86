package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miajio/cpca/pkg/cpca"
	"github.com/miajio/cpca/pkg/participle"
)

// transformOutput 一行输出, 开启分词时附带剩余地址的分词结果
type transformOutput struct {
	cpca.Segmentation
	Words []string `json:"words,omitempty"`
}

func transformCmd(a *app) *cobra.Command {
	var (
		overrides []string
		strict    bool
		noStrict  bool
		cut       bool
	)
	cmd := &cobra.Command{
		Use:   "transform [location...]",
		Short: "Extract province, city and area from addresses",
		Long: `Extract province, city and area from each argument, or from each line
of standard input when no argument is given. One JSON object is printed
per input.`,
		Example: `  cpca transform --dict adcodes.csv 浙江省杭州市拱墅区祥园路300号
  cpca transform --override 朝阳区=110105 朝阳区汉庭酒店大山子店
  cat addresses.txt | cpca transform --store ./dict-db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict && noStrict {
				return errors.New("--strict and --no-strict are mutually exclusive")
			}
			m, err := parseOverrides(overrides)
			if err != nil {
				return err
			}
			opts := []cpca.TransformOption{cpca.WithOverrides(m)}
			switch {
			case strict:
				opts = append(opts, cpca.WithStrict(true))
			case noStrict:
				opts = append(opts, cpca.WithStrict(false))
			}

			e, err := a.newExtractor()
			if err != nil {
				return err
			}
			var cutter *participle.Cutter
			if cut {
				if cutter, err = participle.New(e.Index(), participle.WithLogger(a.logger)); err != nil {
					return err
				}
			}

			t := &transformer{extractor: e, cutter: cutter, opts: opts, out: cmd.OutOrStdout()}
			if len(args) > 0 {
				for _, location := range args {
					if err := t.write(location); err != nil {
						return err
					}
				}
				return nil
			}
			return t.writeLines(cmd.InOrStdin())
		},
	}
	cmd.Flags().StringArrayVar(&overrides, "override", nil, "homonym county code, name=code (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat homonym counties as unmatched")
	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "pick the first homonym county")
	cmd.Flags().BoolVar(&cut, "cut", false, "cut the remaining address into words")
	return cmd
}

// parseOverrides 解析 name=code
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, code, ok := strings.Cut(p, "=")
		name, code = strings.TrimSpace(name), strings.TrimSpace(code)
		if !ok || name == "" || code == "" {
			return nil, fmt.Errorf("invalid override %q, want name=code", p)
		}
		m[name] = code
	}
	return m, nil
}

type transformer struct {
	extractor *cpca.Extractor
	cutter    *participle.Cutter
	opts      []cpca.TransformOption
	out       io.Writer
}

func (t *transformer) write(location string) error {
	o := transformOutput{Segmentation: t.extractor.Transform(location, t.opts...)}
	if t.cutter != nil && o.HasAddress() {
		o.Words = t.cutter.Cut(o.Address)
	}
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.out, string(b))
	return err
}

// writeLines 逐行处理, 跳过空行
func (t *transformer) writeLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := t.write(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
