// Package codec переводит коллекции домена в текстовые снапшоты и
// обратно. Формат — JSON, совместимый с данными исходной установки:
// ключи полей и вид таймстампов (RFC 3339, как у Date.toJSON) сохранены.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/ledger"
	"github.com/yw-tools/classtrack/internal/models"
)

func EncodeStudents(students []*models.Student) (string, error) {
	return encode(students)
}

// DecodeStudents восстанавливает список учеников и приводит записи к
// инвариантам:
//   - отсутствующий аватар превращается в пустую строку (именно пустую,
//     а не сгенерированную — генерация бывает только при создании);
//   - отсутствующие истории становятся пустыми списками;
//   - TotalPoints пересчитывается из истории, чтобы вылечить возможное
//     расхождение кэша в старых данных.
func DecodeStudents(raw string) ([]*models.Student, error) {
	var students []*models.Student
	if err := json.Unmarshal([]byte(raw), &students); err != nil {
		return nil, fmt.Errorf("снапшот учеников: %w", err)
	}
	for _, st := range students {
		if st.PointsHistory == nil {
			st.PointsHistory = []models.PointEntry{}
		}
		if st.Recitations == nil {
			st.Recitations = []models.RecitationEntry{}
		}
		st.TotalPoints = ledger.Total(st.PointsHistory)
	}
	return students, nil
}

func EncodePointCategories(items []string) (string, error) {
	return encode(items)
}

func DecodePointCategories(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("снапшот категорий баллов: %w", err)
	}
	return items, nil
}

func EncodeRecitationCategories(items []models.RecitationCategory) (string, error) {
	return encode(items)
}

func DecodeRecitationCategories(raw string) ([]models.RecitationCategory, error) {
	var items []models.RecitationCategory
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("снапшот разделов: %w", err)
	}
	return items, nil
}

func EncodeTexts(items []models.RecitationText) (string, error) {
	return encode(items)
}

// DecodeTexts понимает оба формата каталога текстов: текущий (объекты
// {id, text, categoryId}) и старый плоский список строк. Старый формат
// мигрируется на месте: каждая строка получает свежий id и попадает в
// раздел defaultCategoryID с сохранением порядка. migrated=true говорит
// фасаду сразу пересохранить каталог в новом виде.
func DecodeTexts(raw, defaultCategoryID string) (items []models.RecitationText, migrated bool, err error) {
	if err = json.Unmarshal([]byte(raw), &items); err == nil {
		return items, false, nil
	}

	var legacy []string
	if err2 := json.Unmarshal([]byte(raw), &legacy); err2 != nil {
		return nil, false, fmt.Errorf("снапшот текстов: %w", err)
	}
	items = make([]models.RecitationText, 0, len(legacy))
	for _, text := range legacy {
		items = append(items, models.RecitationText{
			ID:         uuid.NewString(),
			Text:       text,
			CategoryID: defaultCategoryID,
		})
	}
	return items, true, nil
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("сериализация снапшота: %w", err)
	}
	return string(b), nil
}
