// Package key prints the marker legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/haru/pkg/printers"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	pp := printers.PrettyPrint{}
	pp.Key()
	return nil
}
