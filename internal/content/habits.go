package content

// Habit — привычка ежедневного чек-ина.
type Habit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Habits возвращает каталог привычек чек-ина.
func Habits() []Habit {
	return []Habit{
		{ID: "mewing", Label: "Mewing"},
		{ID: "skincare", Label: "Skincare"},
		{ID: "posture", Label: "Postura"},
		{ID: "water", Label: "Água (2L+)"},
		{ID: "sleep", Label: "Sono (7h+)"},
		{ID: "exercise", Label: "Exercício Facial"},
	}
}

// ValidHabit сообщает, известна ли привычка.
func ValidHabit(id string) bool {
	for _, h := range Habits() {
		if h.ID == id {
			return true
		}
	}
	return false
}
