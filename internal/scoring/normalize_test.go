package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestNormalize_Clamping(t *testing.T) {
	raw := RawResult{
		Overall:     intp(150),
		Potential:   intp(120),
		Jawline:     intp(-10),
		Symmetry:    intp(0),
		SkinQuality: intp(101),
		Cheekbones:  intp(29),
	}
	result := Normalize(raw)

	assert.Equal(t, 100, result.Overall)
	assert.Equal(t, 100, result.Potential)
	assert.Equal(t, 30, result.Jawline)
	assert.Equal(t, 30, result.Symmetry)
	assert.Equal(t, 100, result.SkinQuality)
	assert.Equal(t, 30, result.Cheekbones)
}

func TestNormalize_Defaults(t *testing.T) {
	result := Normalize(RawResult{})

	assert.Equal(t, 70, result.Overall)
	assert.Equal(t, 95, result.Potential)
	assert.Equal(t, 65, result.Jawline)
	assert.Equal(t, 70, result.Symmetry)
	assert.Equal(t, 65, result.SkinQuality)
	assert.Equal(t, 65, result.Cheekbones)
	assert.Len(t, result.Strengths, 3)
	assert.Len(t, result.Weaknesses, 3)
	assert.Len(t, result.Tips, 3)
}

// Противоборствующий вход: сырой potential ниже overall.
// Ремонт обязан поднять potential как минимум до overall.
func TestNormalize_PotentialRepair(t *testing.T) {
	tests := []struct {
		name          string
		overall       *int
		potential     *int
		wantPotential int
	}{
		{"potential ниже overall", intp(95), intp(40), 100},
		{"overall на потолке", intp(100), intp(90), 100},
		{"инвариант уже выполнен", intp(70), intp(92), 92},
		{"ремонт в пределах потолка", intp(93), intp(90), 98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(RawResult{Overall: tt.overall, Potential: tt.potential})
			assert.Equal(t, tt.wantPotential, result.Potential)
			assert.GreaterOrEqual(t, result.Potential, result.Overall)
			assert.GreaterOrEqual(t, result.Potential, 90)
			assert.LessOrEqual(t, result.Potential, 100)
		})
	}
}

func TestNormalize_RationaleSelection(t *testing.T) {
	raw := RawResult{
		Jawline:     intp(90), // сильнейшая метрика
		Symmetry:    intp(80),
		SkinQuality: intp(60),
		Cheekbones:  intp(40), // слабейшая метрика
	}
	result := Normalize(raw)

	require.Len(t, result.Strengths, 3)
	assert.Equal(t, []string{
		"Linha da mandíbula bem definida",
		"Boa simetria entre os lados do rosto",
		"Pele com textura uniforme",
	}, result.Strengths)

	require.Len(t, result.Weaknesses, 3)
	assert.Equal(t, []string{
		"Maçãs do rosto podem ganhar mais destaque",
		"Qualidade da pele pode ser aprimorada",
		"Simetria facial pode ser trabalhada",
	}, result.Weaknesses)
}

// При равных оценках выбор стабилен: тай-брейк — фиксированный порядок метрик.
func TestNormalize_RationaleTieBreak(t *testing.T) {
	raw := RawResult{
		Jawline:     intp(70),
		Symmetry:    intp(70),
		SkinQuality: intp(70),
		Cheekbones:  intp(70),
	}
	first := Normalize(raw)
	second := Normalize(raw)

	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.Weaknesses, second.Weaknesses)
	assert.Equal(t, []string{
		"Linha da mandíbula bem definida",
		"Boa simetria entre os lados do rosto",
		"Pele com textura uniforme",
	}, first.Strengths)
}

func TestNormalize_KeepsProvidedRationales(t *testing.T) {
	raw := RawResult{
		Strengths:  []string{"a", "b", "c"},
		Weaknesses: []string{"x", "y", "z"},
		Tips:       []string{"dica"},
	}
	result := Normalize(raw)

	assert.Equal(t, []string{"a", "b", "c"}, result.Strengths)
	assert.Equal(t, []string{"x", "y", "z"}, result.Weaknesses)
	assert.Equal(t, []string{"dica"}, result.Tips)
}

func TestHeuristic_Score(t *testing.T) {
	strategy := Heuristic{}

	for _, goal := range []string{"face", "skin", "posture", "general", "", "unknown"} {
		t.Run("goal="+goal, func(t *testing.T) {
			result, err := strategy.Score(context.Background(), ScoreRequest{Goal: goal})
			require.NoError(t, err)

			for _, sub := range result.SubScores() {
				assert.GreaterOrEqual(t, sub.Score, 30)
				assert.LessOrEqual(t, sub.Score, 100)
			}
			assert.GreaterOrEqual(t, result.Potential, 90)
			assert.GreaterOrEqual(t, result.Potential, result.Overall)
			assert.Len(t, result.Strengths, 3)
			assert.Len(t, result.Weaknesses, 3)
		})
	}
}

func TestHeuristic_GoalLowersTargetMetric(t *testing.T) {
	strategy := Heuristic{}

	result, err := strategy.Score(context.Background(), ScoreRequest{Goal: "skin"})
	require.NoError(t, err)
	// Цель "пеле" подчёркивает кожу как зону роста.
	assert.Contains(t, result.Weaknesses[0], "pele")
}
