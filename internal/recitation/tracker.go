package recitation

import (
	"time"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/models"
)

// Record — upsert отметки о сдаче по ключу (ученик, textID).
// Существующая запись заменяется на месте, сохраняя позицию в списке;
// новая вставляется в начало. Эта асимметрия намеренная: уже сданные
// тексты не скачут по списку при пересдаче.
func Record(st *models.Student, textID string, status models.RecitationStatus, notes string, points int) models.RecitationEntry {
	entry := models.RecitationEntry{
		ID:        uuid.NewString(),
		TextID:    textID,
		Status:    status,
		Notes:     notes,
		Points:    points,
		Timestamp: time.Now(),
	}

	for i, r := range st.Recitations {
		if r.TextID == textID {
			st.Recitations[i] = entry
			return entry
		}
	}
	st.Recitations = append([]models.RecitationEntry{entry}, st.Recitations...)
	return entry
}

// Status — статус сдачи текста; пустая строка, если отметки ещё нет.
func Status(st *models.Student, textID string) models.RecitationStatus {
	for _, r := range st.Recitations {
		if r.TextID == textID {
			return r.Status
		}
	}
	return ""
}

// TextInUse — ссылается ли хоть одна отметка любого ученика на текст.
// Guard для удаления текста из каталога.
func TextInUse(students []*models.Student, textID string) bool {
	for _, st := range students {
		for _, r := range st.Recitations {
			if r.TextID == textID {
				return true
			}
		}
	}
	return false
}
