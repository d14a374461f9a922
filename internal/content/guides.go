package content

// GuideSection — раздел гайда: заголовок и либо текст, либо список шагов.
type GuideSection struct {
	Title string   `json:"title"`
	Text  string   `json:"text,omitempty"`
	Steps []string `json:"steps,omitempty"`
}

// Guide — обучающий гайд по одной теме.
type Guide struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Intro       string         `json:"intro"`
	Sections    []GuideSection `json:"sections"`
}

// Guides возвращает каталог гайдов.
func Guides() []Guide {
	return guides
}

// GuideByID возвращает гайд по идентификатору.
func GuideByID(id string) (Guide, bool) {
	for _, g := range guides {
		if g.ID == id {
			return g, true
		}
	}
	return Guide{}, false
}

var guides = []Guide{
	{
		ID:          "mewing",
		Title:       "Guia de Mewing",
		Description: "Técnica para definir mandíbula",
		Intro:       "Mewing é uma técnica de postura da língua desenvolvida pelo ortodontista Dr. John Mew. Quando praticada corretamente e consistentemente, pode ajudar a melhorar a estrutura facial.",
		Sections: []GuideSection{
			{
				Title: "O que é Mewing?",
				Text:  "Mewing consiste em manter a língua inteira pressionada contra o céu da boca (palato), incluindo a parte de trás da língua. Isso promove uma postura facial ideal e pode, ao longo do tempo, contribuir para uma mandíbula mais definida.",
			},
			{
				Title: "Como praticar",
				Steps: []string{
					"Feche a boca e mantenha os dentes levemente encostados",
					"Pressione toda a língua contra o céu da boca",
					"A ponta da língua deve ficar atrás dos dentes superiores, sem tocá-los",
					"Respire pelo nariz",
					"Mantenha essa posição o máximo possível durante o dia",
				},
			},
			{
				Title: "Erros comuns",
				Steps: []string{
					"Pressionar apenas a ponta da língua",
					"Forçar demais e causar tensão",
					"Respirar pela boca",
					"Desistir cedo demais - resultados levam meses",
				},
			},
			{
				Title: "Benefícios esperados",
				Steps: []string{
					"Mandíbula mais definida",
					"Melhora na respiração",
					"Postura melhor do pescoço",
					"Face mais harmônica",
				},
			},
		},
	},
	{
		ID:          "skincare",
		Title:       "Guia de Skincare",
		Description: "Rotina básica para pele saudável",
		Intro:       "Uma rotina de skincare consistente é essencial para manter a pele saudável, prevenir problemas e melhorar a aparência geral do rosto.",
		Sections: []GuideSection{
			{
				Title: "Rotina Básica (Manhã)",
				Steps: []string{
					"Lavar o rosto com água morna e sabonete facial suave",
					"Aplicar um sérum com vitamina C (opcional)",
					"Hidratar com creme adequado ao seu tipo de pele",
					"Finalizar com protetor solar FPS 30 ou mais",
				},
			},
			{
				Title: "Rotina Básica (Noite)",
				Steps: []string{
					"Remover maquiagem/sujeira com demaquilante ou óleo",
					"Lavar com sabonete facial",
					"Aplicar tratamentos específicos (ácidos, retinol)",
					"Hidratar bem a pele",
				},
			},
			{
				Title: "Ingredientes importantes",
				Steps: []string{
					"Ácido Hialurônico - hidratação profunda",
					"Niacinamida - controle de oleosidade e poros",
					"Vitamina C - antioxidante e luminosidade",
					"Retinol - renovação celular (usar à noite)",
				},
			},
			{
				Title: "Dicas extras",
				Steps: []string{
					"Nunca durma de maquiagem",
					"Troque fronhas regularmente",
					"Beba bastante água",
					"Evite tocar o rosto com as mãos",
				},
			},
		},
	},
	{
		ID:          "jawline",
		Title:       "Guia de Mandíbula",
		Description: "Exercícios para definição",
		Intro:       "Uma mandíbula bem definida é um dos traços mais desejados. Além do mewing, existem exercícios e hábitos que podem ajudar.",
		Sections: []GuideSection{
			{
				Title: "Exercícios de mandíbula",
				Steps: []string{
					"Chin lifts: Olhe para cima e projete o queixo, mantendo 10s",
					"Jaw clenches: Cerre os dentes suavemente por 5s, relaxe",
					"Neck curls: Deite e levante apenas a cabeça, 10 repetições",
					"Faça 2-3 séries de cada, diariamente",
				},
			},
			{
				Title: "Mastigação correta",
				Steps: []string{
					"Mastigue dos dois lados igualmente",
					"Chiclete sem açúcar pode ajudar (com moderação)",
					"Evite mastigar apenas de um lado",
					"Alimentos mais duros fortalecem os músculos",
				},
			},
			{
				Title: "O que evitar",
				Steps: []string{
					"Ganho excessivo de gordura corporal",
					"Postura ruim (pescoço para frente)",
					"Respiração pela boca",
					"Tensão excessiva na mandíbula (bruxismo)",
				},
			},
		},
	},
	{
		ID:          "cheekbones",
		Title:       "Guia de Maçãs do Rosto",
		Description: "Realce natural das maçãs",
		Intro:       "Maçãs do rosto proeminentes dão estrutura e harmonia ao rosto. Embora a genética seja importante, há formas de realçá-las.",
		Sections: []GuideSection{
			{
				Title: "Exercícios faciais",
				Steps: []string{
					"Sorria amplamente e mantenha por 10 segundos",
					"Faça biquinho e depois sorria, alternando",
					"Sugue as bochechas (face de peixe) por 5 segundos",
					"Repita cada exercício 10-15 vezes",
				},
			},
			{
				Title: "Mewing e maçãs do rosto",
				Steps: []string{
					"A postura correta da língua pode elevar o maxilar",
					"Com o tempo, isso pode realçar as maçãs",
					"Seja consistente e paciente",
				},
			},
			{
				Title: "Dicas adicionais",
				Steps: []string{
					"Manter baixo percentual de gordura corporal",
					"Boa hidratação para pele firme",
					"Massagem facial para estimular circulação",
					"Protetor solar para prevenir flacidez",
				},
			},
		},
	},
	{
		ID:          "symmetry",
		Title:       "Guia de Simetria Facial",
		Description: "Melhorar equilíbrio do rosto",
		Intro:       "A simetria facial é associada à atratividade. Embora ninguém seja perfeitamente simétrico, alguns hábitos podem minimizar assimetrias.",
		Sections: []GuideSection{
			{
				Title: "Hábitos de sono",
				Steps: []string{
					"Prefira dormir de barriga para cima",
					"Use travesseiro de altura adequada",
					"Evite dormir sempre do mesmo lado",
					"Mantenha horários regulares de sono",
				},
			},
			{
				Title: "Postura diária",
				Steps: []string{
					"Não apoie o rosto na mão",
					"Mantenha a coluna ereta",
					"Distribua o peso igualmente ao sentar",
					"Evite cruzar sempre a mesma perna",
				},
			},
			{
				Title: "Mastigação equilibrada",
				Steps: []string{
					"Mastigue dos dois lados igualmente",
					"Observe qual lado você usa mais",
					"Faça um esforço consciente para equilibrar",
				},
			},
			{
				Title: "Exercícios de mobilidade",
				Steps: []string{
					"Mova a mandíbula suavemente de lado a lado",
					"Faça círculos com a mandíbula",
					"Massageie os músculos faciais regularmente",
					"Relaxe a tensão do rosto conscientemente",
				},
			},
		},
	},
	{
		ID:          "routine",
		Title:       "Guia de Rotina Diária",
		Description: "Rotina completa de looksmaxing",
		Intro:       "Uma rotina diária consistente é a chave para resultados. Aqui está um guia completo para maximizar sua aparência.",
		Sections: []GuideSection{
			{
				Title: "Manhã",
				Steps: []string{
					"Acordar e beber um copo de água",
					"Skincare: lavar, hidratar, protetor solar",
					"Verificar postura ao escovar os dentes",
					"Praticar mewing desde que acorda",
				},
			},
			{
				Title: "Durante o dia",
				Steps: []string{
					"Manter mewing consistente",
					"Beber água regularmente (2L+ total)",
					"Manter boa postura ao trabalhar/estudar",
					"Fazer pausas para alongar pescoço e costas",
				},
			},
			{
				Title: "Noite",
				Steps: []string{
					"Skincare noturno completo",
					"Exercícios faciais (5-10 minutos)",
					"Preparar ambiente para sono de qualidade",
					"Dormir 7-8 horas em posição adequada",
				},
			},
			{
				Title: "Semanalmente",
				Steps: []string{
					"Esfoliação suave (1-2x por semana)",
					"Máscara facial hidratante",
					"Revisar e ajustar hábitos",
					"Tirar fotos para acompanhar evolução",
				},
			},
		},
	},
}
