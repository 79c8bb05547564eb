package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hukuksozluk/vurgu/internal/definition"
	"github.com/hukuksozluk/vurgu/internal/term"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look a term up in the cache, then in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaned := term.Clean(args[0])
			if cleaned == "" {
				return fmt.Errorf("invalid term: %q", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, store, err := openStore(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			chain := definition.NewChain(store, newDictionaryClient(cfg.Dictionary))
			result, ok, err := chain.Get(ctx, cleaned)
			if err != nil {
				return fmt.Errorf("chain.Get(%s) > %w", cleaned, err)
			}
			if !ok {
				return fmt.Errorf("no definition found for %q", cleaned)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", result.Term, result.Definition, result.Origin)
			return err
		},
	}
}
