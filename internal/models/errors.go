package models

import "errors"

// Ошибки доменного уровня. Все они ожидаемы и показываются пользователю;
// проверять через errors.Is, обёртки добавляют контекст через %w.
var (
	// ErrBlank — обязательное текстовое поле пусто после обрезки пробелов.
	ErrBlank = errors.New("обязательное поле пустое")
	// ErrDuplicate — нарушена уникальность (учебный номер, имя категории, текст).
	ErrDuplicate = errors.New("такая запись уже существует")
	// ErrInUse — удаление запрещено: на запись ещё ссылаются.
	ErrInUse = errors.New("запись используется")
	// ErrNotFound — операция ссылается на несуществующий id.
	ErrNotFound = errors.New("запись не найдена")
)
