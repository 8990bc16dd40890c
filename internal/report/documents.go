package report

import (
	"time"

	"github.com/marcus/designtokens/internal/contrast"
)

// Standards describes the WCAG criteria used for classification.
type Standards struct {
	AAA  string `json:"AAA"`
	AA   string `json:"AA"`
	Fail string `json:"Fail"`
}

// Header is shared by all report documents.
type Header struct {
	Generated     string    `json:"generated"`
	Statistics    Summary   `json:"statistics"`
	WCAGStandards Standards `json:"wcagStandards"`
}

// ComprehensiveDocument is the capped list of all combinations, best first.
type ComprehensiveDocument struct {
	Header
	AllCombinations []Combination `json:"allCombinations"`
}

// ValidCombinations groups the accessible pairs by level.
type ValidCombinations struct {
	AA  []Combination `json:"AA"`
	AAA []Combination `json:"AAA"`
}

// ValidDocument lists every AA and AAA pair.
type ValidDocument struct {
	Header
	ValidCombinations ValidCombinations `json:"validCombinations"`
}

// ForbiddenDocument lists every failing pair, worst first.
type ForbiddenDocument struct {
	Header
	ForbiddenCombinations []Combination `json:"forbiddenCombinations"`
}

// Documents are the three report files of a contrast run.
type Documents struct {
	Comprehensive ComprehensiveDocument
	Valid         ValidDocument
	Forbidden     ForbiddenDocument
}

// DefaultStandards returns the level descriptions.
func DefaultStandards() Standards {
	return Standards{
		AAA:  contrast.LevelAAA.Description(),
		AA:   contrast.LevelAA.Description(),
		Fail: contrast.LevelFail.Description(),
	}
}

// Documents builds the report documents stamped with generated (UTC, RFC 3339).
func (r *Reports) Documents(generated time.Time) Documents {
	h := Header{
		Generated:     generated.UTC().Format(time.RFC3339),
		Statistics:    r.Summary,
		WCAGStandards: DefaultStandards(),
	}
	return Documents{
		Comprehensive: ComprehensiveDocument{Header: h, AllCombinations: r.Comprehensive},
		Valid: ValidDocument{Header: h, ValidCombinations: ValidCombinations{
			AA:  r.ValidAA,
			AAA: r.ValidAAA,
		}},
		Forbidden: ForbiddenDocument{Header: h, ForbiddenCombinations: r.Forbidden},
	}
}
