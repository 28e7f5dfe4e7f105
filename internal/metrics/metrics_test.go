package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/ident"
	"go.eggybyte.com/scaffold/internal/templates"
)

func sampleReport() *generators.Report {
	entry := func(kind templates.Kind, outcome generators.Outcome) generators.Entry {
		return generators.Entry{
			Target:  generators.Target{Pair: generators.Pair{Package: "a", Class: "Foo"}, Kind: kind},
			Outcome: outcome,
		}
	}
	return &generators.Report{
		Language: ident.Java,
		Entries: []generators.Entry{
			entry(templates.KindMain, generators.Created),
			entry(templates.KindTest, generators.Created),
			entry(templates.KindMain, generators.Skipped),
			entry(templates.KindTest, generators.Failed),
		},
	}
}

func TestCollectors_Observe(t *testing.T) {
	c := NewCollectors()
	c.Observe(sampleReport(), time.Unix(1700000000, 0))

	expected := `
# HELP scaffold_files Files handled by the last scaffold run, by kind and outcome
# TYPE scaffold_files gauge
scaffold_files{kind="main",outcome="created"} 1
scaffold_files{kind="main",outcome="failed"} 0
scaffold_files{kind="main",outcome="skipped"} 1
scaffold_files{kind="test",outcome="created"} 1
scaffold_files{kind="test",outcome="failed"} 1
scaffold_files{kind="test",outcome="skipped"} 0
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "scaffold_files"))
	assert.Equal(t, float64(1700000000), testutil.ToFloat64(c.lastRun))
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.prom")
	require.NoError(t, WriteTextfile(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `scaffold_files{kind="test",outcome="failed"} 1`)
	assert.Contains(t, content, "scaffold_last_run_timestamp_seconds")
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scaffold.prom")
	assert.Error(t, WriteTextfile(path, sampleReport()))
}
