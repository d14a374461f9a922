package scoring

import (
	"context"

	"github.com/lowmaxapp/lowmax/internal/models"
)

// Heuristic — офлайновая стратегия: фиксированная таблица оценок по цели
// пользователя. Оставлена как документированная альтернатива удалённой
// стратегии; фотография игнорируется.
type Heuristic struct{}

// heuristicRow — заготовка сырых оценок для одной цели.
type heuristicRow struct {
	overall, potential, jawline, symmetry, skinQuality, cheekbones int
}

// Таблица подобрана вручную: выбранная цель слегка занижает "свою" метрику,
// подчёркивая зону роста, за которой пользователь пришёл.
var heuristicTable = map[string]heuristicRow{
	"face":    {overall: 72, potential: 94, jawline: 64, symmetry: 70, skinQuality: 74, cheekbones: 68},
	"skin":    {overall: 73, potential: 95, jawline: 74, symmetry: 72, skinQuality: 62, cheekbones: 71},
	"posture": {overall: 74, potential: 94, jawline: 71, symmetry: 66, skinQuality: 73, cheekbones: 72},
	"general": {overall: 71, potential: 96, jawline: 68, symmetry: 69, skinQuality: 67, cheekbones: 66},
}

// rowDefault используется для пустой или неизвестной цели.
var rowDefault = heuristicRow{
	overall:     defaultOverall,
	potential:   defaultPotential,
	jawline:     defaultJawline,
	symmetry:    defaultSymmetry,
	skinQuality: defaultSkinQuality,
	cheekbones:  defaultCheekbones,
}

// Score возвращает нормализованный результат из таблицы по цели запроса.
func (Heuristic) Score(_ context.Context, req ScoreRequest) (*models.AnalysisResult, error) {
	row, ok := heuristicTable[req.Goal]
	if !ok {
		row = rowDefault
	}
	return Normalize(RawResult{
		Overall:     &row.overall,
		Potential:   &row.potential,
		Jawline:     &row.jawline,
		Symmetry:    &row.symmetry,
		SkinQuality: &row.skinQuality,
		Cheekbones:  &row.cheekbones,
	}), nil
}
