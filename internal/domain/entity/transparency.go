package entity

import "strings"

// TransparencyCriteria lists the five completeness checks behind the score,
// in the canonical order shown to users.
var TransparencyCriteria = []string{
	"servicios publicados",
	"al menos 5 fotos",
	"sitio web",
	"certificaciones publicadas",
	"equipo de direccion publicado",
}

// MinTransparencyImages is the photo count required for the image criterion.
const MinTransparencyImages = 5

// TransparencyScore computes the 0..5 completeness score of a residence from
// five independent predicates, each contributing exactly 0 or 1. The function
// is pure and total: an all-empty residence scores 0.
func TransparencyScore(r *Residence) int {
	score := 0

	if len(r.Services) > 0 {
		score++
	}
	if len(r.Images) >= MinTransparencyImages {
		score++
	}
	if strings.TrimSpace(r.Website) != "" {
		score++
	}
	if len(r.Certifications) > 0 {
		score++
	}
	if len(r.Directors) > 0 {
		score++
	}

	return score
}
