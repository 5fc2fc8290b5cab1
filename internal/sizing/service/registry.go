package service

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"sizeguide-service/internal/sizing/model"
)

// Registry holds one chart per product category. Charts are swapped whole;
// callers get copies and can never edit a registered table in place.
type Registry struct {
	mu     sync.RWMutex
	charts map[string]model.Chart
}

// NewRegistry returns a registry holding DefaultChart under DefaultCategory.
func NewRegistry() *Registry {
	return &Registry{charts: map[string]model.Chart{DefaultCategory: DefaultChart()}}
}

func (r *Registry) Get(category string) (model.Chart, error) {
	c, err := NormalizeCategory(category)
	if err != nil {
		return model.Chart{}, err
	}
	r.mu.RLock()
	chart, ok := r.charts[c]
	r.mu.RUnlock()
	if !ok {
		return model.Chart{}, errors.Wrapf(ErrUnknownCategory, "%q", c)
	}
	return cloneChart(chart), nil
}

// Put validates chart and registers it, replacing any chart of the same category.
func (r *Registry) Put(chart model.Chart) error {
	c, err := NormalizeCategory(chart.Category)
	if err != nil {
		return errors.Wrap(ErrInvalidChart, err.Error())
	}
	if err := Validate(chart); err != nil {
		return err
	}
	chart = cloneChart(chart)
	chart.Category = c

	r.mu.Lock()
	r.charts[c] = chart
	r.mu.Unlock()
	return nil
}

func (r *Registry) Categories() []string {
	r.mu.RLock()
	out := lo.Keys(r.charts)
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}
