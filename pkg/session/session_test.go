package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/align"
	"github.com/zaydek/alignment-sanity/pkg/engine"
	"github.com/zaydek/alignment-sanity/pkg/session"
)

func newScheduler(t *testing.T, debounce time.Duration) (*session.Scheduler, chan session.Result) {
	t.Helper()

	results := make(chan session.Result, 16)
	sched := session.NewScheduler(
		engine.New(align.BuiltinTables()),
		debounce,
		func(r session.Result) { results <- r },
	)
	t.Cleanup(sched.Close)
	return sched, results
}

func waitResult(t *testing.T, results chan session.Result) session.Result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a preview result")
		return session.Result{}
	}
}

func TestSchedulerDeliversPreview(t *testing.T) {
	t.Parallel()

	sched, results := newScheduler(t, time.Millisecond)

	v := sched.Update("cfg.yml", "yaml", []byte("name: \"app\"\nversion: \"1.0\"\n"))
	assert.Equal(t, uint64(1), v)

	r := waitResult(t, results)
	assert.Equal(t, "cfg.yml", r.Doc)
	assert.Equal(t, uint64(1), r.Version)
	assert.Equal(t, "yaml", r.Language)
	require.NotEmpty(t, r.Instructions)
	assert.Equal(t, "name:    \"app\"", r.Lines[0])
}

func TestSchedulerDebouncesBursts(t *testing.T) {
	t.Parallel()

	sched, results := newScheduler(t, 100*time.Millisecond)

	// Three edits inside one debounce window: only the last version may
	// be delivered.
	sched.Update("doc", "yaml", []byte("a: 1\n"))
	sched.Update("doc", "yaml", []byte("ab: 1\n"))
	last := sched.Update("doc", "yaml", []byte("abc: 1\nx: 2\n"))

	r := waitResult(t, results)
	assert.Equal(t, last, r.Version)

	select {
	case extra := <-results:
		t.Fatalf("superseded version %d was delivered", extra.Version)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSchedulerVersionsAreMonotonic(t *testing.T) {
	t.Parallel()

	sched, _ := newScheduler(t, time.Hour) // never fires

	v1 := sched.Update("doc", "yaml", []byte("a: 1\n"))
	v2 := sched.Update("doc", "yaml", []byte("a: 2\n"))
	assert.Less(t, v1, v2)
	assert.Equal(t, v2, sched.Version("doc"))
	assert.Zero(t, sched.Version("other"))
}

func TestSchedulerTracksDocumentsIndependently(t *testing.T) {
	t.Parallel()

	sched, results := newScheduler(t, time.Millisecond)

	sched.Update("a.yml", "yaml", []byte("a: 1\naa: 2\n"))
	sched.Update("b.yml", "yaml", []byte("b: 1\nbb: 2\n"))

	seen := map[string]uint64{}
	for range 2 {
		r := waitResult(t, results)
		seen[r.Doc] = r.Version
	}
	assert.Equal(t, map[string]uint64{"a.yml": 1, "b.yml": 1}, seen)
}

func TestSchedulerCloseStopsDelivery(t *testing.T) {
	t.Parallel()

	results := make(chan session.Result, 16)
	sched := session.NewScheduler(
		engine.New(align.BuiltinTables()),
		50*time.Millisecond,
		func(r session.Result) { results <- r },
	)

	sched.Update("doc", "yaml", []byte("a: 1\n"))
	sched.Close()

	assert.Zero(t, sched.Update("doc", "yaml", []byte("b: 2\n")),
		"updates after close are ignored")

	select {
	case r := <-results:
		t.Fatalf("result %d delivered after close", r.Version)
	case <-time.After(200 * time.Millisecond):
	}
}
