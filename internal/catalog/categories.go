package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/models"
)

// Categories — разделы каталога текстов плюс активный фильтр.
// Пустой selectedID означает «показывать все разделы».
type Categories struct {
	items      []models.RecitationCategory
	selectedID string
}

func NewCategories(items []models.RecitationCategory) *Categories {
	return &Categories{items: items}
}

func (c *Categories) Items() []models.RecitationCategory { return c.items }

func (c *Categories) SelectedID() string { return c.selectedID }

func (c *Categories) Find(id string) *models.RecitationCategory {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i]
		}
	}
	return nil
}

// First — раздел по умолчанию для новых текстов, когда фильтр не выбран.
func (c *Categories) First() *models.RecitationCategory {
	if len(c.items) == 0 {
		return nil
	}
	return &c.items[0]
}

// Add создаёт раздел и сразу делает его активным фильтром.
func (c *Categories) Add(name string) (models.RecitationCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.RecitationCategory{}, fmt.Errorf("имя раздела: %w", models.ErrBlank)
	}
	for _, it := range c.items {
		if it.Name == name {
			return models.RecitationCategory{}, fmt.Errorf("раздел %q: %w", name, models.ErrDuplicate)
		}
	}
	cat := models.RecitationCategory{ID: uuid.NewString(), Name: name}
	c.items = append(c.items, cat)
	c.selectedID = cat.ID
	return cat, nil
}

// Delete удаляет раздел, если на него не ссылается ни один текст
// (проверку даёт вызывающая сторона: каталоги друг друга не видят).
// Удаление активного раздела сбрасывает фильтр на «все».
func (c *Categories) Delete(id string, inUse func(categoryID string) bool) error {
	for i, it := range c.items {
		if it.ID != id {
			continue
		}
		if inUse(id) {
			return fmt.Errorf("раздел %q: %w", it.Name, models.ErrInUse)
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		if c.selectedID == id {
			c.selectedID = ""
		}
		return nil
	}
	return fmt.Errorf("раздел %s: %w", id, models.ErrNotFound)
}

// Select меняет активный фильтр; пустой id — «все разделы».
func (c *Categories) Select(id string) error {
	if id == "" {
		c.selectedID = ""
		return nil
	}
	if c.Find(id) == nil {
		return fmt.Errorf("раздел %s: %w", id, models.ErrNotFound)
	}
	c.selectedID = id
	return nil
}
