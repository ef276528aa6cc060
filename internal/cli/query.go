package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mvp-joe/datagen/internal/inspect"
	"github.com/mvp-joe/datagen/internal/storage"
	"github.com/spf13/cobra"
)

var (
	queryOutputFlag string
	querySQLiteFlag string
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <document> <jsonpath>",
	Short: "Run a JSONPath query against an emitted document",
	Long: `Query loads one emitted document and prints every match of a JSONPath
expression, one per line.

Documents are named by their path under the output root without the .json
extension. With --sqlite the document is read from the SQLite mirror instead.

Examples:
  # Every block id
  datagen query blocks '$[*].id'

  # States of a single block
  datagen query blocks "$[?(@.id == 'minecraft:furnace')].states[*].id"

  # A merged tag read from the mirror
  datagen query tags/block_tags '$[*].tagName' --sqlite output/data.db
`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryOutputFlag, "output", "o", "", "Output root to read documents from (default from config)")
	queryCmd.Flags().StringVar(&querySQLiteFlag, "sqlite", "", "Read documents from this SQLite mirror")
}

func runQuery(cmd *cobra.Command, args []string) error {
	root := cfg.Output.Dir
	if queryOutputFlag != "" {
		root = queryOutputFlag
	}
	return query(cmd.Context(), root, querySQLiteFlag, args[0], args[1], cmd.OutOrStdout())
}

// query prints the matches of selector in the named document. The document
// is read from the SQLite mirror at dbPath when set, else from root.
func query(ctx context.Context, root, dbPath, name, selector string, out io.Writer) error {
	q, err := inspect.Compile(selector)
	if err != nil {
		return err
	}

	var doc any
	if dbPath != "" {
		reader, err := storage.NewDocumentReader(dbPath)
		if err != nil {
			return err
		}
		defer reader.Close()

		doc, err = inspect.LoadStored(ctx, reader, name)
		if err != nil {
			return err
		}
	} else {
		doc, err = inspect.LoadFile(root, name)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(out, inspect.Format(q.Apply(doc)))
	return err
}
