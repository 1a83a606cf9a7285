// Package classroom — фасад ядра: единственная точка входа для витрины.
// Каждая мутация проходит синхронно: проверка → изменение в памяти →
// запись снапшота. Подвешенных состояний нет, частичное обновление
// снаружи не наблюдаемо.
package classroom

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yw-tools/classtrack/internal/catalog"
	"github.com/yw-tools/classtrack/internal/codec"
	"github.com/yw-tools/classtrack/internal/ctxutil"
	"github.com/yw-tools/classtrack/internal/metrics"
	"github.com/yw-tools/classtrack/internal/models"
	"github.com/yw-tools/classtrack/internal/observability"
	"github.com/yw-tools/classtrack/internal/roster"
	"github.com/yw-tools/classtrack/internal/store"
)

type Service struct {
	mu    sync.Mutex
	log   *zap.SugaredLogger
	store store.Store

	roster    *roster.Roster
	pointCats *catalog.PointCategories
	cats      *catalog.Categories
	texts     *catalog.Texts

	// warnings — человекочитаемые предупреждения о снапшотах, которые не
	// удалось разобрать и которые заменены значениями по умолчанию.
	// Витрина обязана их показать: пользователь должен знать о потере.
	warnings []string
}

// New грузит состояние из хранилища. Отсутствующий снапшот — обычный
// первый запуск, нечитаемый — логируется, отправляется в Sentry и
// заменяется значениями по умолчанию; наружу ошибка не уходит.
func New(st store.Store, log *zap.SugaredLogger) (*Service, error) {
	s := &Service{log: log, store: st}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) load() error {
	ctx, cancel := ctxutil.WithStoreTimeout(context.Background())
	defer cancel()

	// разделы каталога — раньше текстов: миграции старого формата нужен
	// раздел по умолчанию
	cats, err := s.loadCategories(ctx)
	if err != nil {
		return err
	}
	s.cats = catalog.NewCategories(cats)

	texts, migrated, err := s.loadTexts(ctx, cats[0].ID)
	if err != nil {
		return err
	}
	s.texts = catalog.NewTexts(texts)

	pointCats, err := s.loadPointCategories(ctx)
	if err != nil {
		return err
	}
	s.pointCats = catalog.NewPointCategories(pointCats)

	students, err := s.loadStudents(ctx)
	if err != nil {
		return err
	}
	s.roster = roster.New(students)

	if migrated {
		s.log.Infow("каталог текстов мигрирован из старого формата", "count", len(texts))
		if err := s.persist(ctx, store.KeyRecitationTexts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) loadCategories(ctx context.Context) ([]models.RecitationCategory, error) {
	raw, ok, err := s.store.Load(ctx, store.KeyRecitationCategories)
	if err != nil {
		return nil, err
	}
	if ok {
		if items, derr := codec.DecodeRecitationCategories(raw); derr == nil && len(items) > 0 {
			return items, nil
		} else if derr != nil {
			s.warnLoad(store.KeyRecitationCategories, derr)
		}
	}
	return []models.RecitationCategory{
		{ID: uuid.NewString(), Name: models.DefaultRecitationCategoryName},
	}, nil
}

func (s *Service) loadTexts(ctx context.Context, defaultCategoryID string) ([]models.RecitationText, bool, error) {
	raw, ok, err := s.store.Load(ctx, store.KeyRecitationTexts)
	if err != nil {
		return nil, false, err
	}
	if ok {
		items, migrated, derr := codec.DecodeTexts(raw, defaultCategoryID)
		if derr == nil {
			return items, migrated, nil
		}
		s.warnLoad(store.KeyRecitationTexts, derr)
	}
	items := make([]models.RecitationText, 0, len(models.DefaultRecitationTexts))
	for _, text := range models.DefaultRecitationTexts {
		items = append(items, models.RecitationText{
			ID:         uuid.NewString(),
			Text:       text,
			CategoryID: defaultCategoryID,
		})
	}
	return items, false, nil
}

func (s *Service) loadPointCategories(ctx context.Context) ([]string, error) {
	raw, ok, err := s.store.Load(ctx, store.KeyPointCategories)
	if err != nil {
		return nil, err
	}
	if ok {
		if items, derr := codec.DecodePointCategories(raw); derr == nil && len(items) > 0 {
			return items, nil
		} else if derr != nil {
			s.warnLoad(store.KeyPointCategories, derr)
		}
	}
	return append([]string(nil), models.DefaultPointCategories...), nil
}

func (s *Service) loadStudents(ctx context.Context) ([]*models.Student, error) {
	raw, ok, err := s.store.Load(ctx, store.KeyRoster)
	if err != nil {
		return nil, err
	}
	if ok {
		if students, derr := codec.DecodeStudents(raw); derr == nil {
			return students, nil
		} else {
			s.warnLoad(store.KeyRoster, derr)
		}
	}
	return []*models.Student{}, nil
}

func (s *Service) warnLoad(key string, err error) {
	s.log.Warnw("снапшот не разобран, берём значения по умолчанию", "key", key, "err", err)
	observability.CaptureErr(err)
	s.warnings = append(s.warnings,
		fmt.Sprintf("данные %q не удалось прочитать, они заменены значениями по умолчанию", key))
}

// LoadWarnings — предупреждения загрузки для показа пользователю.
func (s *Service) LoadWarnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

// persist пишет снапшоты перечисленных ключей. Вызывается после каждой
// мутации, без батчинга: одна команда — одна запись.
func (s *Service) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		value, err := s.encode(key)
		if err == nil {
			t0 := time.Now()
			err = s.store.Save(ctx, key, value)
			metrics.ObserveSnapshotSave(time.Since(t0))
		}
		if err != nil {
			metrics.PersistErrors.Inc()
			observability.CaptureErr(err)
			s.log.Errorw("снапшот не записан", "key", key, "err", err)
			return fmt.Errorf("сохранение %s: %w", key, err)
		}
	}
	return nil
}

func (s *Service) encode(key string) (string, error) {
	switch key {
	case store.KeyRoster:
		return codec.EncodeStudents(s.roster.Students())
	case store.KeyPointCategories:
		return codec.EncodePointCategories(s.pointCats.Items())
	case store.KeyRecitationCategories:
		return codec.EncodeRecitationCategories(s.cats.Items())
	case store.KeyRecitationTexts:
		return codec.EncodeTexts(s.texts.Items())
	}
	return "", fmt.Errorf("неизвестный ключ снапшота %q", key)
}

// mutate — общий каркас команды: блокировка, мутация, запись снапшотов.
func (s *Service) mutate(op string, keys []string, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		metrics.MutationErrors.Inc()
		return err
	}
	metrics.Mutations.WithLabelValues(op).Inc()

	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctxutil.WithOp(context.Background(), op))
	defer cancel()
	return s.persist(ctx, keys...)
}
