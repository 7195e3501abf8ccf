// Package search finds task lines matching a keyword across all days.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/daybook"
	"tableflip.dev/haru/pkg/printers"
	"tableflip.dev/haru/pkg/store"
)

type Search struct {
	Persistence store.Persistence

	Keyword string
	Output  string
}

func (s *Search) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not search, no persistence")
	}
	if s.Keyword == "" {
		return errors.New("nothing to search for")
	}

	book := daybook.New(s.Persistence, s.Persistence.Snapshot(ctx))
	matches := book.Search(s.Keyword)

	if s.Output == "json" {
		b, err := json.Marshal(matches)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("matches for %q", s.Keyword))
	pp.SearchResults(matches)
	return nil
}
