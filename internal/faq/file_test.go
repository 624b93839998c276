package faq

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestDefaultSource(t *testing.T) {
	ds, err := NewDefaultSource(testDefaults).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Frequently Asked Questions", ds.Title)
	require.Equal(t, []string{"All", "Platform", "Pricing", "Subscription"}, ds.Tabs)
	require.Equal(t, 6, ds.Count())
	require.Empty(t, ds.MissingTabs())
	require.Equal(t, "What pricing plans do you offer?", ds.FAQs["Pricing"][0].Question)
}

func TestFileSourceFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"faqs.json": {Data: []byte(`[{"question": "q1", "answer": "a1", "category": "Platform"}]`)},
	}

	ds, err := NewFileSource(fsys, "faqs.json", testDefaults).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Platform"}, ds.Tabs)

	_, err = NewFileSource(fsys, "missing.json", testDefaults).Load(context.Background())
	require.Error(t, err)
}

func TestOpenFileRereadsOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"faqs": {"A": [{"question": "q", "answer": "a"}]}}`), 0o644))

	src := OpenFile(path, testDefaults)
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Count())

	require.NoError(t, os.WriteFile(path, []byte(`{"faqs": {"A": [{"question": "q", "answer": "a"}, {"question": "q2", "answer": "a2"}]}}`), 0o644))
	ds, err = src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Count())
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultSource(testDefaults).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
