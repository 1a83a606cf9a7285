package models

import "time"

// RecitationStatus — статус сдачи текста наизусть.
type RecitationStatus string

const (
	Completed  RecitationStatus = "completed"
	Incomplete RecitationStatus = "incomplete"
)

// PointEntry — одна запись о начислении или списании баллов.
// Записи неизменяемы: их только добавляют, никогда не правят и не удаляют.
type PointEntry struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

// RecitationEntry — отметка о сдаче текста. На пару (student, textId)
// хранится ровно одна запись: повторная сдача заменяет прежнюю.
type RecitationEntry struct {
	ID        string           `json:"id"`
	TextID    string           `json:"textId"`
	Status    RecitationStatus `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Points    int              `json:"points"`
	Notes     string           `json:"notes"`
}

type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Avatar    string `json:"avatar"`
	// TotalPoints — кэш суммы PointsHistory; при загрузке пересчитывается заново.
	TotalPoints   int               `json:"totalPoints"`
	PointsHistory []PointEntry      `json:"pointsHistory"`
	Recitations   []RecitationEntry `json:"recitations"`
}
