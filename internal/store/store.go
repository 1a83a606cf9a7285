package store

import "context"

// Ключи снапшотов. Имена совместимы с данными прежних установок,
// менять нельзя.
const (
	KeyRoster               = "student-points-data"
	KeyPointCategories      = "point-categories"
	KeyRecitationTexts      = "recitation-texts"
	KeyRecitationCategories = "recitation-categories"
)

// Store — единственная граница с долговременным хранилищем: текстовые
// снапшоты коллекций под фиксированными ключами. Записывается всегда
// полный снапшот; частичных обновлений нет.
type Store interface {
	// Load возвращает снапшот по ключу; ok=false — ключа ещё нет.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	// Save полностью заменяет снапшот под ключом.
	Save(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
