package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and edit the definition cache",
	}
	cmd.AddCommand(
		newCacheListCommand(),
		newCacheGetCommand(),
		newCachePutCommand(),
	)
	return cmd
}

func newCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every cached definition as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, store, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			entries, err := store.All(cmd.Context())
			if err != nil {
				return fmt.Errorf("store.All > %w", err)
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(entries); err != nil {
				return fmt.Errorf("encoder.Encode > %w", err)
			}
			return encoder.Close()
		},
	}
}

func newCacheGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <term>",
		Short: "Print the cached definition of a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, store, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			definition, ok, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("store.Get(%s) > %w", args[0], err)
			}
			if !ok {
				return fmt.Errorf("%q is not cached", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), definition)
			return err
		},
	}
}

func newCachePutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put <term> <definition>",
		Short: "Store a definition, replacing any cached one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, store, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := store.Put(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("store.Put(%s) > %w", args[0], err)
			}
			return nil
		},
	}
}
