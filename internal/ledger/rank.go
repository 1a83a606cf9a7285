package ledger

// Rank — ступень рейтинга. Таблица отсортирована по MinPoints по
// возрастанию; цвета — классы оформления для витрины.
type Rank struct {
	Name      string
	MinPoints int
	Color     string
	TextColor string
}

var Ranks = []Rank{
	{Name: "初学者", MinPoints: 0, Color: "bg-slate-200", TextColor: "text-slate-700"},
	{Name: "铜牌", MinPoints: 100, Color: "bg-amber-200", TextColor: "text-amber-800"},
	{Name: "银牌", MinPoints: 300, Color: "bg-slate-300", TextColor: "text-slate-800"},
	{Name: "金牌", MinPoints: 600, Color: "bg-yellow-200", TextColor: "text-yellow-800"},
	{Name: "白金", MinPoints: 1000, Color: "bg-blue-200", TextColor: "text-blue-800"},
	{Name: "钻石", MinPoints: 1500, Color: "bg-sky-200", TextColor: "text-sky-800"},
	{Name: "大师", MinPoints: 2000, Color: "bg-purple-200", TextColor: "text-purple-800"},
	{Name: "专家", MinPoints: 3000, Color: "bg-emerald-200", TextColor: "text-emerald-800"},
}

// GetRank — высшая ступень, порог которой уже достигнут. Идём с конца
// таблицы, поэтому на точном пороге возвращается именно его ступень.
func GetRank(points int) Rank {
	for i := len(Ranks) - 1; i >= 0; i-- {
		if points >= Ranks[i].MinPoints {
			return Ranks[i]
		}
	}
	return Ranks[0]
}

// NextRank — следующая ступень или nil на вершине таблицы.
func NextRank(points int) *Rank {
	cur := GetRank(points)
	for i, r := range Ranks {
		if r.Name == cur.Name && i < len(Ranks)-1 {
			next := Ranks[i+1]
			return &next
		}
	}
	return nil
}

// PointsToNextRank — сколько баллов осталось до следующей ступени, 0 на вершине.
func PointsToNextRank(points int) int {
	next := NextRank(points)
	if next == nil {
		return 0
	}
	return next.MinPoints - points
}

// ProgressToNextRank — прогресс внутри текущей ступени в процентах,
// целое с округлением вниз; на вершине всегда 100.
func ProgressToNextRank(points int) int {
	cur := GetRank(points)
	next := NextRank(points)
	if next == nil {
		return 100
	}
	return (points - cur.MinPoints) * 100 / (next.MinPoints - cur.MinPoints)
}
