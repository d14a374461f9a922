// Package models содержит структуру результата анализа внешности.
package models

// AnalysisResult — нормализованный результат одного анализа.
// Инвариант: все оценки в [30,100], Potential в [90,100] и Potential >= Overall.
// Potential завышен намеренно — это мотивационная механика продукта,
// а не статистическая модель.
type AnalysisResult struct {
	Overall     int      `json:"overall"`        // Общая оценка
	Potential   int      `json:"potential"`      // Достижимый потенциал, всегда >= Overall
	Jawline     int      `json:"jawline"`        // Линия челюсти
	Symmetry    int      `json:"symmetry"`       // Симметрия лица
	SkinQuality int      `json:"skinQuality"`    // Качество кожи
	Cheekbones  int      `json:"cheekbones"`     // Скулы
	Strengths   []string `json:"strengths"`      // Сильные стороны, ровно три
	Weaknesses  []string `json:"weaknesses"`     // Зоны роста, ровно три
	Tips        []string `json:"tips,omitempty"` // Практические рекомендации
}

// SubScore — одна частная оценка с её метрикой.
type SubScore struct {
	Metric string // jawline, symmetry, skinQuality или cheekbones
	Score  int
}

// SubScores возвращает четыре частные оценки результата в фиксированном порядке.
// Порядок используется как детерминированный тай-брейк при выборе
// сильных и слабых сторон.
func (r *AnalysisResult) SubScores() []SubScore {
	return []SubScore{
		{Metric: "jawline", Score: r.Jawline},
		{Metric: "symmetry", Score: r.Symmetry},
		{Metric: "skinQuality", Score: r.SkinQuality},
		{Metric: "cheekbones", Score: r.Cheekbones},
	}
}
