package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagramd/diagramd/pkg/cache"
)

// newCacheCmd creates the cache command group for managing the local layout
// cache.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local layout cache",
	}
	cmd.AddCommand(newCacheDirCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cacheDir())
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.NewFileCache(cacheDir())
			if err != nil {
				return err
			}
			fc := c.(*cache.FileCache)
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess("cleared %s", styleValue.Render(fc.Dir()))
			return nil
		},
	}
}
