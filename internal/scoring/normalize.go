package scoring

import (
	"sort"

	"github.com/lowmaxapp/lowmax/internal/models"
)

// RawResult — сырой ответ источника оценок до нормализации.
// Поля-указатели различают "поле отсутствует" и нулевые значения:
// отсутствующие поля заменяются значениями по умолчанию.
type RawResult struct {
	Overall     *int     `json:"overall"`
	Potential   *int     `json:"potential"`
	Jawline     *int     `json:"jawline"`
	Symmetry    *int     `json:"symmetry"`
	SkinQuality *int     `json:"skinQuality"`
	Cheekbones  *int     `json:"cheekbones"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Tips        []string `json:"tips"`
}

// Значения по умолчанию для отсутствующих полей сырого ответа.
const (
	defaultOverall     = 70
	defaultPotential   = 95
	defaultJawline     = 65
	defaultSymmetry    = 70
	defaultSkinQuality = 65
	defaultCheekbones  = 65
)

// Канонические формулировки сильных и слабых сторон по метрикам.
var (
	strengthByMetric = map[string]string{
		"jawline":     "Linha da mandíbula bem definida",
		"symmetry":    "Boa simetria entre os lados do rosto",
		"skinQuality": "Pele com textura uniforme",
		"cheekbones":  "Maçãs do rosto com boa projeção",
	}
	weaknessByMetric = map[string]string{
		"jawline":     "Definição da mandíbula pode melhorar",
		"symmetry":    "Simetria facial pode ser trabalhada",
		"skinQuality": "Qualidade da pele pode ser aprimorada",
		"cheekbones":  "Maçãs do rosto podem ganhar mais destaque",
	}
	defaultTips = []string{
		"Mantenha uma rotina de skincare",
		"Pratique mewing leve",
		"Hidrate-se adequadamente",
	}
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Normalize приводит сырой ответ к контракту AnalysisResult:
// частные оценки и Overall зажимаются в [MinScore,MaxScore], Potential —
// в [MinPotential,MaxScore]; затем Potential поднимается до Overall+5
// (с потолком 100), если оказался ниже Overall. Отсутствующие сильные
// и слабые стороны достраиваются детерминированно из частных оценок.
func Normalize(raw RawResult) *models.AnalysisResult {
	result := &models.AnalysisResult{
		Overall:     clamp(orDefault(raw.Overall, defaultOverall), MinScore, MaxScore),
		Potential:   clamp(orDefault(raw.Potential, defaultPotential), MinPotential, MaxScore),
		Jawline:     clamp(orDefault(raw.Jawline, defaultJawline), MinScore, MaxScore),
		Symmetry:    clamp(orDefault(raw.Symmetry, defaultSymmetry), MinScore, MaxScore),
		SkinQuality: clamp(orDefault(raw.SkinQuality, defaultSkinQuality), MinScore, MaxScore),
		Cheekbones:  clamp(orDefault(raw.Cheekbones, defaultCheekbones), MinScore, MaxScore),
		Strengths:   raw.Strengths,
		Weaknesses:  raw.Weaknesses,
		Tips:        raw.Tips,
	}

	// Ремонт инварианта Potential >= Overall.
	if result.Potential < result.Overall {
		result.Potential = result.Overall + 5
		if result.Potential > MaxScore {
			result.Potential = MaxScore
		}
	}

	if len(result.Strengths) != RationaleCount {
		result.Strengths = pickRationales(result, true)
	}
	if len(result.Weaknesses) != RationaleCount {
		result.Weaknesses = pickRationales(result, false)
	}
	if len(result.Tips) == 0 {
		result.Tips = append([]string(nil), defaultTips...)
	}
	return result
}

// pickRationales выбирает ровно RationaleCount формулировок: для сильных
// сторон — метрики с наибольшими оценками, для слабых — с наименьшими.
// Сортировка стабильна, тай-брейк — фиксированный порядок SubScores.
func pickRationales(r *models.AnalysisResult, strengths bool) []string {
	subs := r.SubScores()
	sort.SliceStable(subs, func(i, j int) bool {
		if strengths {
			return subs[i].Score > subs[j].Score
		}
		return subs[i].Score < subs[j].Score
	})

	table := weaknessByMetric
	if strengths {
		table = strengthByMetric
	}
	picked := make([]string, 0, RationaleCount)
	for _, sub := range subs[:RationaleCount] {
		picked = append(picked, table[sub.Metric])
	}
	return picked
}
