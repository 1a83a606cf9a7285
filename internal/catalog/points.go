package catalog

import (
	"fmt"
	"strings"

	"github.com/yw-tools/classtrack/internal/models"
)

// PointCategories — категории баллов. Исторически это просто строки без
// id: записи в журнале ссылаются на категорию по имени.
type PointCategories struct {
	items []string
}

func NewPointCategories(items []string) *PointCategories {
	return &PointCategories{items: items}
}

func (p *PointCategories) Items() []string { return p.items }

func (p *PointCategories) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("имя категории: %w", models.ErrBlank)
	}
	for _, it := range p.items {
		if it == name {
			return "", fmt.Errorf("категория %q: %w", name, models.ErrDuplicate)
		}
	}
	p.items = append(p.items, name)
	return name, nil
}

// Delete убирает категорию, если ни одна запись журнала её не использует.
func (p *PointCategories) Delete(name string, inUse func(name string) bool) error {
	for i, it := range p.items {
		if it != name {
			continue
		}
		if inUse(name) {
			return fmt.Errorf("категория %q: %w", name, models.ErrInUse)
		}
		p.items = append(p.items[:i], p.items[i+1:]...)
		return nil
	}
	return fmt.Errorf("категория %q: %w", name, models.ErrNotFound)
}
