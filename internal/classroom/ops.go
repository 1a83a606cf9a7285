package classroom

import (
	"fmt"

	"github.com/yw-tools/classtrack/internal/ledger"
	"github.com/yw-tools/classtrack/internal/models"
	"github.com/yw-tools/classtrack/internal/recitation"
	"github.com/yw-tools/classtrack/internal/store"
)

// ---- ученики ----

// CreateStudent добавляет ученика и делает его выбранным.
func (s *Service) CreateStudent(name, studentID string) (*models.Student, error) {
	var st *models.Student
	err := s.mutate("create_student", []string{store.KeyRoster}, func() (err error) {
		st, err = s.roster.Create(name, studentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Infow("ученик добавлен", "name", st.Name, "studentId", st.StudentID)
	return st, nil
}

// DeleteStudent удаляет ученика вместе с его историями; каталоги не трогаем.
func (s *Service) DeleteStudent(id string) error {
	return s.mutate("delete_student", []string{store.KeyRoster}, func() error {
		return s.roster.Delete(id)
	})
}

func (s *Service) UpdateAvatar(id, avatar string) error {
	return s.mutate("update_avatar", []string{store.KeyRoster}, func() error {
		return s.roster.UpdateAvatar(id, avatar)
	})
}

// ToggleSelect — выбор ученика с toggle-семантикой; выбор не персистится,
// это состояние сеанса. Возвращает id нового выбора ("" — выбора нет).
func (s *Service) ToggleSelect(id string) (string, error) {
	var selected string
	err := s.mutate("toggle_select", nil, func() (err error) {
		selected, err = s.roster.ToggleSelect(id)
		return err
	})
	return selected, err
}

// ---- баллы ----

// AddPoints пишет запись в журнал ученика. Знак amount определяет
// вызывающая сторона; ноль запрещён.
func (s *Service) AddPoints(studentID string, amount int, description, category string) (models.PointEntry, error) {
	var entry models.PointEntry
	err := s.mutate("add_points", []string{store.KeyRoster}, func() error {
		st := s.roster.Find(studentID)
		if st == nil {
			return fmt.Errorf("ученик %s: %w", studentID, models.ErrNotFound)
		}
		var aerr error
		entry, aerr = ledger.Append(st, amount, description, category)
		return aerr
	})
	if err != nil {
		return models.PointEntry{}, err
	}
	return entry, nil
}

// ---- сдачи текстов ----

// RecordRecitation — upsert отметки о сдаче по паре (ученик, текст).
func (s *Service) RecordRecitation(studentID, textID string, status models.RecitationStatus, notes string, points int) (models.RecitationEntry, error) {
	var entry models.RecitationEntry
	err := s.mutate("record_recitation", []string{store.KeyRoster}, func() error {
		if status != models.Completed && status != models.Incomplete {
			return fmt.Errorf("неизвестный статус сдачи %q", status)
		}
		st := s.roster.Find(studentID)
		if st == nil {
			return fmt.Errorf("ученик %s: %w", studentID, models.ErrNotFound)
		}
		entry = recitation.Record(st, textID, status, notes, points)
		return nil
	})
	if err != nil {
		return models.RecitationEntry{}, err
	}
	return entry, nil
}

// ---- категории баллов ----

func (s *Service) AddPointCategory(name string) (string, error) {
	var added string
	err := s.mutate("add_point_category", []string{store.KeyPointCategories}, func() (err error) {
		added, err = s.pointCats.Add(name)
		return err
	})
	return added, err
}

// DeletePointCategory отказывает, пока категорию упоминает хоть одна
// запись журнала любого ученика.
func (s *Service) DeletePointCategory(name string) error {
	return s.mutate("delete_point_category", []string{store.KeyPointCategories}, func() error {
		return s.pointCats.Delete(name, func(n string) bool {
			return ledger.CategoryInUse(s.roster.Students(), n)
		})
	})
}

// ---- разделы каталога текстов ----

func (s *Service) AddRecitationCategory(name string) (models.RecitationCategory, error) {
	var cat models.RecitationCategory
	err := s.mutate("add_recitation_category", []string{store.KeyRecitationCategories}, func() (err error) {
		cat, err = s.cats.Add(name)
		return err
	})
	return cat, err
}

// DeleteRecitationCategory отказывает, пока в разделе остаются тексты.
func (s *Service) DeleteRecitationCategory(id string) error {
	return s.mutate("delete_recitation_category", []string{store.KeyRecitationCategories}, func() error {
		return s.cats.Delete(id, s.texts.CategoryInUse)
	})
}

// SelectRecitationCategory меняет активный фильтр; пустой id — «все».
// Фильтр — состояние сеанса, снапшот не пишем.
func (s *Service) SelectRecitationCategory(id string) error {
	return s.mutate("select_recitation_category", nil, func() error {
		return s.cats.Select(id)
	})
}

// ---- тексты ----

// AddRecitationText добавляет текст; при пустом categoryID текст попадает
// в активный раздел, а без фильтра — в первый раздел каталога.
func (s *Service) AddRecitationText(text, categoryID string) (models.RecitationText, error) {
	var item models.RecitationText
	err := s.mutate("add_recitation_text", []string{store.KeyRecitationTexts}, func() error {
		if categoryID == "" {
			categoryID = s.cats.SelectedID()
		}
		if categoryID == "" {
			if first := s.cats.First(); first != nil {
				categoryID = first.ID
			}
		}
		if s.cats.Find(categoryID) == nil {
			return fmt.Errorf("раздел %s: %w", categoryID, models.ErrNotFound)
		}
		var aerr error
		item, aerr = s.texts.Add(text, categoryID)
		return aerr
	})
	if err != nil {
		return models.RecitationText{}, err
	}
	return item, nil
}

// DeleteRecitationText отказывает, пока на текст ссылается хоть одна
// отметка о сдаче. Ссылки идут по значению текста, не по id.
func (s *Service) DeleteRecitationText(text string) error {
	return s.mutate("delete_recitation_text", []string{store.KeyRecitationTexts}, func() error {
		return s.texts.Delete(text, func(t string) bool {
			return recitation.TextInUse(s.roster.Students(), t)
		})
	})
}
