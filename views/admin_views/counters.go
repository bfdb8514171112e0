package admin_views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
)

// CountersTable renders the auth outcome counters. The dashboard embeds it and
// the counters endpoint serves it alone for refreshes.
func CountersTable(entries []counter.Entry, updated time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="counters"><table class="counters">`); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td></tr>`, templ.EscapeString(e.Name), e.Count); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</table><p class="updated">%s</p></div>`,
			templ.EscapeString(updated.UTC().Format(time.RFC3339)))
		return err
	})
}
