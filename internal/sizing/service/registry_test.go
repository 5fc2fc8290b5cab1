package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizeguide-service/internal/sizing/model"
)

func TestRegistryDefault(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	chart, err := reg.Get(DefaultCategory)
	require.NoError(t, err)
	assert.Equal(t, DefaultChart(), chart)
	assert.Equal(t, []string{DefaultCategory}, reg.Categories())
}

func TestRegistryUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Get("hats")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRegistryPutReplacesWholeChart(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	c := DefaultChart()
	c.Category = "Dresses"
	require.NoError(t, reg.Put(c))

	c.Entries[0].Length = 30
	require.NoError(t, reg.Put(c))

	got, err := reg.Get("dresses")
	require.NoError(t, err)
	assert.Equal(t, "dresses", got.Category)
	assert.Equal(t, 30.0, got.Entries[0].Length)
	assert.Equal(t, []string{"default", "dresses"}, reg.Categories())
}

func TestRegistryRejectsInvalid(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	c := DefaultChart()
	c.Category = "tops"
	c.Entries = c.Entries[1:]
	assert.ErrorIs(t, reg.Put(c), ErrInvalidChart)

	c = DefaultChart()
	c.Category = "no/slashes"
	assert.ErrorIs(t, reg.Put(c), ErrInvalidChart)

	assert.Equal(t, []string{DefaultCategory}, reg.Categories())
}

func TestRegistryReturnsCopies(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	a, err := reg.Get(DefaultCategory)
	require.NoError(t, err)
	a.Entries[0].Label = model.XXL

	b, err := reg.Get(DefaultCategory)
	require.NoError(t, err)
	assert.Equal(t, model.XS, b.Entries[0].Label)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := DefaultChart()
			c.Category = "tops"
			assert.NoError(t, reg.Put(c))
		}()
		go func() {
			defer wg.Done()
			_, err := reg.Get(DefaultCategory)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Contains(t, reg.Categories(), "tops")
}
