// Package content содержит продуктовые каталоги приложения: цели онбординга,
// привычки ежедневного чек-ина, гайды и правила персональных рекомендаций.
// Тексты продуктовые, на португальском; бизнес-логики здесь нет,
// кроме отбора рекомендаций по оценкам анализа.
package content

// Goal — цель эволюции, выбираемая на онбординге.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Goals возвращает каталог целей онбординга.
func Goals() []Goal {
	return []Goal{
		{ID: "face", Title: "Melhorar rosto", Description: "Mandíbula, simetria, estrutura facial"},
		{ID: "skin", Title: "Melhorar pele", Description: "Textura, acne, manchas, hidratação"},
		{ID: "posture", Title: "Postura/Expressão", Description: "Postura corporal e expressões"},
		{ID: "general", Title: "Evolução geral", Description: "Melhorar todos os aspectos"},
	}
}

// ValidGoal сообщает, известна ли цель. Пустая строка допустима:
// цель ещё не выбрана.
func ValidGoal(id string) bool {
	if id == "" {
		return true
	}
	for _, g := range Goals() {
		if g.ID == id {
			return true
		}
	}
	return false
}
