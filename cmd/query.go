package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// query holds the one-shot lookups requested on the command line
type query struct {
	get    string
	link   string
	pretty string
	search string
}

// run prints the result of every requested lookup to w, stopping at the first failure
func (q query) run(w io.Writer, catalog domain.Catalog) error {
	if q.pretty != "" {
		summary, err := catalog.Pretty(q.pretty)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, summary)
	}

	if q.link != "" {
		link, err := catalog.Link(q.link)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Dataset URL: %s\n", link)
	}

	if q.get != "" {
		rec, err := catalog.Get(q.get)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode dataset %s: %w", q.get, err)
		}
	}

	if q.search != "" {
		fmt.Fprintf(w, "Searching for '%s' datasets...\n", q.search)
		results := catalog.Search(q.search)
		for _, rec := range results {
			fmt.Fprintf(w, "Found: %s (Index: %s)\n", rec.Name, rec.Index)
		}
		if len(results) == 0 {
			fmt.Fprintln(w, "No datasets found")
		}
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}

	return nil
}
