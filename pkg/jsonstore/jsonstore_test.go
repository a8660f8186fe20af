package jsonstore_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/paperfx/paperfx_app/pkg/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	s, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	s := newStore(t)

	in := counterDoc{Name: "trades", Count: 3}
	require.NoError(t, s.Save("nested/dir/doc.json", in))

	var out counterDoc
	require.NoError(t, s.Load("nested/dir/doc.json", &out))
	assert.Equal(t, in, out)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newStore(t)

	var out counterDoc
	err := s.Load("absent.json", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, s.Exists("absent.json"))
}

func TestStore_SaveLeavesNoStagingFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := jsonstore.New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save("doc.json", counterDoc{Count: 1}))
	require.NoError(t, s.Save("doc.json", counterDoc{Count: 2}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestUpdate_CreatesDocument(t *testing.T) {
	s := newStore(t)

	err := jsonstore.Update(s, "doc.json", func(doc *counterDoc, exists bool) error {
		assert.False(t, exists)
		doc.Name = "fresh"
		doc.Count = 1
		return nil
	})
	require.NoError(t, err)

	var out counterDoc
	require.NoError(t, s.Load("doc.json", &out))
	assert.Equal(t, counterDoc{Name: "fresh", Count: 1}, out)
}

func TestUpdate_CallbackErrorWritesNothing(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save("doc.json", counterDoc{Count: 5}))

	boom := errors.New("rejected")
	err := jsonstore.Update(s, "doc.json", func(doc *counterDoc, exists bool) error {
		doc.Count = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	var out counterDoc
	require.NoError(t, s.Load("doc.json", &out))
	assert.Equal(t, 5, out.Count, "failed update must not be visible")
}

func TestUpdate_SerializesConcurrentWriters(t *testing.T) {
	s := newStore(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			err := jsonstore.Update(s, "doc.json", func(doc *counterDoc, exists bool) error {
				doc.Count++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var out counterDoc
	require.NoError(t, s.Load("doc.json", &out))
	assert.Equal(t, writers, out.Count, "no increment may be lost")
}

func TestUpdate_DistinctFilesDoNotShareState(t *testing.T) {
	s := newStore(t)

	require.NoError(t, jsonstore.Update(s, filepath.Join("portfolios", "1.json"), func(doc *counterDoc, _ bool) error {
		doc.Count = 10
		return nil
	}))
	require.NoError(t, jsonstore.Update(s, filepath.Join("portfolios", "2.json"), func(doc *counterDoc, _ bool) error {
		doc.Count = 20
		return nil
	}))

	var one, two counterDoc
	require.NoError(t, s.Load("portfolios/1.json", &one))
	require.NoError(t, s.Load("portfolios/2.json", &two))
	assert.Equal(t, 10, one.Count)
	assert.Equal(t, 20, two.Count)
}
