package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miajio/cpca/pkg/dict"
)

func importCmd(a *app) *cobra.Command {
	var (
		replace bool
		backup  string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a dictionary file into a badger store",
		Example: `  cpca import --dict adcodes.csv --store ./dict-db
  cpca import --dict adcodes_gbk.csv --encoding gbk --store ./dict-db --replace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.Store.Dir == "" {
				return errors.New("--store is required")
			}
			records, err := dict.LoadFile(a.conf.Dict.Path, dict.WithEncoding(a.conf.Dict.Encoding))
			if err != nil {
				return err
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if replace {
				if err := s.DropRecords(); err != nil {
					return err
				}
			}
			if err := s.PutRecords(records); err != nil {
				return err
			}
			n, err := s.Count()
			if err != nil {
				return err
			}
			if backup != "" {
				if err := s.Backup(backup); err != nil {
					return fmt.Errorf("backup: %w", err)
				}
			}
			a.logger.Info("dictionary imported",
				zap.String("dict", a.conf.Dict.Path),
				zap.String("store", a.conf.Store.Dir),
				zap.Int("records", n))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records, store holds %d\n", len(records), n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "drop existing records before importing")
	cmd.Flags().StringVar(&backup, "backup", "", "write a badger backup file after importing")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the records of a badger store in dictionary format",
		Example: `  cpca export --store ./dict-db > adcodes.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.Store.Dir == "" {
				return errors.New("--store is required")
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			records, err := s.Records()
			if err != nil {
				return err
			}

			if out == "" {
				return dict.Write(cmd.OutOrStdout(), records)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := dict.Write(f, records); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, default stdout")
	return cmd
}
