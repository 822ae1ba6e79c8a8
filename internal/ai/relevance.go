package ai

import "strings"

// Keyword lists for the relevance gate. Scoring is deliberately crude:
// two or more domain hits (minus off-topic hits) counts as a haircut
// question; anything else gets the standard reply without touching the
// provider.
var domainKeywords = []string{
	// núcleo
	"corte", "barba", "estilo", "estetica", "estética", "facciones", "cara", "rostro",
	"cabello", "pelo", "textura", "tipo de cabello", "barberia", "barbería", "degradado", "fade",
	// rasgos faciales
	"frente", "pomulos", "pómulos", "menton", "mentón", "mandibula", "mandíbula", "perfil", "patillas", "bigote",
	// formas de cara
	"oval", "redond", "triangular", "diamante", "cuadrad", "alargad", "estrech",
	// estilos comunes
	"pompadour", "quiff", "mullet", "crop", "crew", "side part", "linea", "raya", "buzz", "undercut",
	// verbos contextuales
	"me queda", "me favorece", "recomend", "suger", "cambiar corte", "barbero",
}

var offTopicKeywords = []string{
	"clima", "chiste", "comida", "politica", "política", "videojuego",
	"programacion", "programación", "tarea", "deberes", "auto", "mustang",
	"coche", "finanzas", "medicina", "juego", "deporte",
}

// IsRelevantText reports whether the text looks like a haircut/style
// question worth forwarding to the model.
func IsRelevantText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}

	score := 0
	for _, k := range domainKeywords {
		if strings.Contains(t, k) {
			score++
		}
	}
	for _, k := range offTopicKeywords {
		if strings.Contains(t, k) {
			score--
		}
	}
	return score >= 2
}
