package content

import "github.com/lowmaxapp/lowmax/internal/models"

// recommendationThreshold — частная оценка ниже этого порога
// включает соответствующий блок рекомендаций.
const recommendationThreshold = 70

// RecommendationItem — одна карточка с советами.
type RecommendationItem struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
}

// Recommendation — тематический блок рекомендаций.
type Recommendation struct {
	ID    string               `json:"id"`
	Title string               `json:"title"`
	Items []RecommendationItem `json:"items"`
}

var skinRecommendations = []RecommendationItem{
	{
		Title: "Skincare Básico",
		Tips: []string{
			"Lave o rosto 2x ao dia com sabonete suave",
			"Use um hidratante adequado ao seu tipo de pele",
			"Aplique protetor solar FPS 30+ diariamente",
		},
	},
	{
		Title: "Hidratação",
		Tips: []string{
			"Beba no mínimo 2L de água por dia",
			"Use sérum hidratante com ácido hialurônico",
			"Evite banhos muito quentes",
		},
	},
}

var jawlineRecommendations = []RecommendationItem{
	{
		Title: "Mewing",
		Tips: []string{
			"Posicione a língua inteira no céu da boca",
			"Mantenha os dentes levemente encostados",
			"Respire pelo nariz, não pela boca",
			"Pratique consistentemente ao longo do dia",
		},
	},
	{
		Title: "Postura",
		Tips: []string{
			"Mantenha a coluna ereta ao sentar",
			"Queixo levemente para baixo, não para frente",
			"Evite olhar para baixo no celular por longos períodos",
		},
	},
}

var symmetryRecommendations = []RecommendationItem{
	{
		Title: "Sono",
		Tips: []string{
			"Durma de barriga para cima quando possível",
			"Use travesseiro de altura adequada",
			"Evite dormir sempre do mesmo lado",
		},
	},
	{
		Title: "Mobilidade",
		Tips: []string{
			"Faça exercícios leves de mobilidade mandibular",
			"Massageie os músculos faciais regularmente",
			"Evite apoiar o rosto na mão",
		},
	},
}

// Recommendations отбирает блоки рекомендаций по оценкам последнего анализа:
// каждая частная оценка ниже порога включает свой блок. Без анализа или
// при равномерно высоких оценках возвращается общий блок поддержки —
// список никогда не бывает пустым.
func Recommendations(scores *models.AnalysisResult) []Recommendation {
	var recs []Recommendation

	if scores != nil {
		if scores.SkinQuality < recommendationThreshold {
			recs = append(recs, Recommendation{ID: "skin", Title: "Melhore sua Pele", Items: skinRecommendations})
		}
		if scores.Jawline < recommendationThreshold {
			recs = append(recs, Recommendation{ID: "jawline", Title: "Defina a Mandíbula", Items: jawlineRecommendations})
		}
		if scores.Symmetry < recommendationThreshold {
			recs = append(recs, Recommendation{ID: "symmetry", Title: "Melhore a Simetria", Items: symmetryRecommendations})
		}
	}

	if len(recs) == 0 {
		items := append(append([]RecommendationItem{}, skinRecommendations...), jawlineRecommendations[0])
		recs = append(recs, Recommendation{ID: "general", Title: "Mantenha sua Evolução", Items: items})
	}
	return recs
}
