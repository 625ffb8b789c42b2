package services

import (
	"sort"
	"strings"

	"hotel-admin/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Umbral mínimo de similitud para aceptar una coincidencia difusa
const searchThreshold = 0.5

// NormalizeText normaliza texto para búsqueda: sin acentos, en minúsculas
// y sin espacios sobrantes ("García" y "garcia" son el mismo huésped)
func NormalizeText(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// createMatcher crea el objeto closestmatch para la lista de nombres
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity calcula la similitud entre dos cadenas, de 0 a 1
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SearchReservations busca reservas por nombre de huésped con tolerancia a
// acentos y errores de tipeo. Las canceladas quedan fuera del resultado.
func SearchReservations(reservations []models.Reservation, query string, limit int) []models.Reservation {
	normQuery := NormalizeText(query)
	if normQuery == "" {
		return nil
	}

	names := make([]string, 0, len(reservations))
	for _, r := range reservations {
		if name := NormalizeText(r.GuestName()); name != "" {
			names = append(names, name)
		}
	}
	var closest string
	if len(names) > 0 {
		closest = createMatcher(names).Closest(normQuery)
	}

	type scored struct {
		reservation models.Reservation
		score       float64
	}
	var matches []scored
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		name := NormalizeText(r.GuestName())
		if name == "" {
			continue
		}

		var score float64
		switch {
		case strings.Contains(name, normQuery):
			score = 1.0
		case name == closest:
			score = calculateSimilarity(name, normQuery) + 0.2
		default:
			score = calculateSimilarity(name, normQuery)
		}
		if score >= searchThreshold {
			matches = append(matches, scored{reservation: r, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.Reservation, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.reservation)
	}
	return out
}
