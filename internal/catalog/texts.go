package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/models"
)

const (
	openBracket  = "《"
	closeBracket = "》"
)

// Canonicalize приводит название к форме с книжными скобками 《…》.
// Патчим только префикс и суффикс: если внутри уже есть лишняя скобка,
// получится кривое название — так вела себя и исходная версия, формат
// сохранён ради совместимости данных.
func Canonicalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if !strings.HasPrefix(text, openBracket) {
		text = openBracket + text
	}
	if !strings.HasSuffix(text, closeBracket) {
		text += closeBracket
	}
	return text
}

// Texts — каталог текстов для сдачи. Уникальность — по каноническому Text.
type Texts struct {
	items []models.RecitationText
}

func NewTexts(items []models.RecitationText) *Texts {
	return &Texts{items: items}
}

func (t *Texts) Items() []models.RecitationText { return t.items }

// Filtered — тексты раздела; пустой categoryID возвращает все.
func (t *Texts) Filtered(categoryID string) []models.RecitationText {
	if categoryID == "" {
		return t.items
	}
	var out []models.RecitationText
	for _, it := range t.items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out
}

func (t *Texts) Find(text string) *models.RecitationText {
	for i := range t.items {
		if t.items[i].Text == text {
			return &t.items[i]
		}
	}
	return nil
}

// Add канонизирует название и добавляет текст в конец каталога.
func (t *Texts) Add(text, categoryID string) (models.RecitationText, error) {
	text = Canonicalize(text)
	if text == "" {
		return models.RecitationText{}, fmt.Errorf("название текста: %w", models.ErrBlank)
	}
	if t.Find(text) != nil {
		return models.RecitationText{}, fmt.Errorf("текст %s: %w", text, models.ErrDuplicate)
	}
	it := models.RecitationText{ID: uuid.NewString(), Text: text, CategoryID: categoryID}
	t.items = append(t.items, it)
	return it, nil
}

// Delete убирает текст из каталога, если на него не ссылается ни одна
// отметка о сдаче (проверку передаёт фасад).
func (t *Texts) Delete(text string, inUse func(text string) bool) error {
	for i, it := range t.items {
		if it.Text != text {
			continue
		}
		if inUse(text) {
			return fmt.Errorf("текст %s: %w", text, models.ErrInUse)
		}
		t.items = append(t.items[:i], t.items[i+1:]...)
		return nil
	}
	return fmt.Errorf("текст %s: %w", text, models.ErrNotFound)
}

// CategoryInUse — остались ли в каталоге тексты раздела.
func (t *Texts) CategoryInUse(categoryID string) bool {
	for _, it := range t.items {
		if it.CategoryID == categoryID {
			return true
		}
	}
	return false
}
