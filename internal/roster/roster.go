package roster

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/yw-tools/classtrack/internal/models"
)

// Roster владеет списком учеников и текущим выбором. Истории баллов и
// сдач живут внутри Student и умирают вместе с ним.
type Roster struct {
	students   []*models.Student
	selectedID string
}

func New(students []*models.Student) *Roster {
	return &Roster{students: students}
}

func (r *Roster) Students() []*models.Student { return r.students }

// Find — поиск по внутреннему id; nil, если ученика нет.
func (r *Roster) Find(id string) *models.Student {
	for _, s := range r.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (r *Roster) SelectedID() string { return r.selectedID }

func (r *Roster) Selected() *models.Student {
	if r.selectedID == "" {
		return nil
	}
	return r.Find(r.selectedID)
}

// Create добавляет ученика в конец списка и делает его выбранным.
// Учебный номер обязан быть уникальным (сравнение точное, с учётом регистра).
func (r *Roster) Create(name, studentID string) (*models.Student, error) {
	name = strings.TrimSpace(name)
	studentID = strings.TrimSpace(studentID)
	if name == "" || studentID == "" {
		return nil, fmt.Errorf("имя и учебный номер: %w", models.ErrBlank)
	}
	for _, s := range r.students {
		if s.StudentID == studentID {
			return nil, fmt.Errorf("учебный номер %q: %w", studentID, models.ErrDuplicate)
		}
	}

	st := &models.Student{
		ID:            uuid.NewString(),
		Name:          name,
		StudentID:     studentID,
		Avatar:        defaultAvatar(),
		PointsHistory: []models.PointEntry{},
		Recitations:   []models.RecitationEntry{},
	}
	r.students = append(r.students, st)
	r.selectedID = st.ID
	return st, nil
}

// Delete удаляет ученика безусловно: каталоги текстов и категорий от
// учеников не зависят и чистки не требуют. Если удалили выбранного —
// выбор сбрасывается.
func (r *Roster) Delete(id string) error {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			if r.selectedID == id {
				r.selectedID = ""
			}
			return nil
		}
	}
	return fmt.Errorf("ученик %s: %w", id, models.ErrNotFound)
}

// UpdateAvatar — чистая замена, содержимое URI не проверяем.
func (r *Roster) UpdateAvatar(id, avatar string) error {
	st := r.Find(id)
	if st == nil {
		return fmt.Errorf("ученик %s: %w", id, models.ErrNotFound)
	}
	st.Avatar = avatar
	return nil
}

// ToggleSelect — повторный клик по уже выбранному ученику снимает выбор.
// Возвращает id нового выбора, пустая строка — выбора нет.
func (r *Roster) ToggleSelect(id string) (string, error) {
	if r.Find(id) == nil {
		return r.selectedID, fmt.Errorf("ученик %s: %w", id, models.ErrNotFound)
	}
	if r.selectedID == id {
		r.selectedID = ""
	} else {
		r.selectedID = id
	}
	return r.selectedID, nil
}

// SetSelected используется фасадом при восстановлении состояния.
func (r *Roster) SetSelected(id string) {
	if id == "" || r.Find(id) != nil {
		r.selectedID = id
	}
}

// defaultAvatar — случайная картинка из коллекции, как в исходной версии.
func defaultAvatar() string {
	return fmt.Sprintf("https://source.unsplash.com/collection/happy-people/%d", rand.IntN(1000))
}
