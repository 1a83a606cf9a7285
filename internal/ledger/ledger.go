package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/models"
)

// Append добавляет запись о баллах в начало истории ученика (список
// хранится от новых к старым) и двигает кэш TotalPoints. Знак amount
// задаёт вызывающая сторона: плюс — начисление, минус — списание.
func Append(st *models.Student, amount int, description, category string) (models.PointEntry, error) {
	if amount == 0 {
		return models.PointEntry{}, fmt.Errorf("количество баллов не может быть нулевым: %w", models.ErrBlank)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.PointEntry{}, fmt.Errorf("описание: %w", models.ErrBlank)
	}
	if strings.TrimSpace(category) == "" {
		category = models.DefaultPointCategory
	}

	entry := models.PointEntry{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Timestamp:   time.Now(),
	}
	st.PointsHistory = append([]models.PointEntry{entry}, st.PointsHistory...)
	st.TotalPoints += amount
	return entry, nil
}

// Total пересчитывает сумму истории с нуля. Используется при загрузке,
// чтобы вылечить возможное расхождение кэша с историей.
func Total(history []models.PointEntry) int {
	sum := 0
	for _, e := range history {
		sum += e.Amount
	}
	return sum
}

// CategoryInUse — есть ли хоть одна запись с такой категорией у кого-то
// из учеников. Нужна для guard'а удаления категории баллов.
func CategoryInUse(students []*models.Student, category string) bool {
	for _, st := range students {
		for _, e := range st.PointsHistory {
			if e.Category == category {
				return true
			}
		}
	}
	return false
}
