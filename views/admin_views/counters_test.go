package admin_views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
)

func TestCountersTable(t *testing.T) {
	updated := time.Date(2070, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []counter.Entry{
		{Name: "login:success", Count: 3},
		{Name: "<b>x</b>", Count: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, CountersTable(entries, updated).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `<tr><td>login:success</td><td>3</td></tr>`)
	assert.Contains(t, out, `&lt;b&gt;x&lt;/b&gt;`)
	assert.NotContains(t, out, `<b>x</b>`)
	assert.Contains(t, out, "2070-01-02T03:04:05Z")
}

func TestCountersTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CountersTable(nil, time.Now()).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<table class="counters"></table>`)
}
