package classroom

import (
	"fmt"

	"github.com/yw-tools/classtrack/internal/models"
	"github.com/yw-tools/classtrack/internal/recitation"
)

// Читающая сторона фасада. Возвращаем копии слайсов, чтобы витрина не
// могла изменить состояние мимо команд.

func (s *Service) Students() []*models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Student(nil), s.roster.Students()...)
}

func (s *Service) FindStudent(id string) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Find(id)
}

func (s *Service) SelectedStudent() *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Selected()
}

func (s *Service) SelectedStudentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.SelectedID()
}

func (s *Service) PointCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.pointCats.Items()...)
}

func (s *Service) RecitationCategories() []models.RecitationCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RecitationCategory(nil), s.cats.Items()...)
}

func (s *Service) SelectedCategoryID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cats.SelectedID()
}

// RecitationTexts — тексты активного раздела; без фильтра — все.
func (s *Service) RecitationTexts() []models.RecitationText {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RecitationText(nil), s.texts.Filtered(s.cats.SelectedID())...)
}

func (s *Service) AllRecitationTexts() []models.RecitationText {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RecitationText(nil), s.texts.Items()...)
}

// RecitationStatus — статус сдачи текста учеником; пустая строка, если
// отметки нет.
func (s *Service) RecitationStatus(studentID, textID string) (models.RecitationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.roster.Find(studentID)
	if st == nil {
		return "", fmt.Errorf("ученик %s: %w", studentID, models.ErrNotFound)
	}
	return recitation.Status(st, textID), nil
}
