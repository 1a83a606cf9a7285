package ctxutil

import (
	"context"
	"time"
)

// приватный тип ключа, чтобы исключить коллизии
type key int

const keyOpName key = iota

// WithOp — имя операции фасада (для логов).
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// DefaultStoreTimeout — потолок на одну операцию с хранилищем.
// Пока константа; при желании позже вынесем в конфиг.
var DefaultStoreTimeout = 5 * time.Second

// WithStoreTimeout — стандартный таймаут для записи/чтения снапшота.
// Если у родителя дедлайн ближе — берём остаток.
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < DefaultStoreTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultStoreTimeout)
}
