package generator

import (
	"errors"
	"fmt"
	"strings"
)

// SolutionType is the kind of AI solution the operations team wants to implement.
type SolutionType string

// SectorType is the business sector the prompts are tailored to.
type SectorType string

// Solutions in display order. The first one is the default.
var Solutions = []SolutionType{
	"Vibe Coding",
	"Automatizaciones con IA",
	"Agentes de IA",
	"Creación de contenido con IA",
	"Análisis de datos con IA",
}

// Sectors in display order. The first one is the default.
var Sectors = []SectorType{
	"Educación",
	"Salud",
	"Retail y Comercio",
	"Finanzas",
	"Manufactura",
	"Logística y Transporte",
	"Construcción",
	"Energía y Minería",
	"Agricultura",
	"Turismo",
	"Servicios profesionales",
	"Tecnología",
	"Gobierno / Sector público",
}

var (
	ErrUnknownSolution = errors.New("unknown solution type")
	ErrUnknownSector   = errors.New("unknown sector type")
)

// Selection is the pair of choices a library is generated for.
type Selection struct {
	Solution SolutionType `json:"solution"`
	Sector   SectorType   `json:"sector"`
}

func DefaultSelection() Selection {
	return Selection{Solution: Solutions[0], Sector: Sectors[0]}
}

// ParseSolution matches s against the catalog, ignoring surrounding space.
func ParseSolution(s string) (SolutionType, error) {
	s = strings.TrimSpace(s)
	for _, v := range Solutions {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSolution, s)
}

func ParseSector(s string) (SectorType, error) {
	s = strings.TrimSpace(s)
	for _, v := range Sectors {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSector, s)
}

// NewSelection validates both values. Empty strings fall back to the defaults.
func NewSelection(solution, sector string) (Selection, error) {
	sel := DefaultSelection()
	if strings.TrimSpace(solution) != "" {
		v, err := ParseSolution(solution)
		if err != nil {
			return Selection{}, err
		}
		sel.Solution = v
	}
	if strings.TrimSpace(sector) != "" {
		v, err := ParseSector(sector)
		if err != nil {
			return Selection{}, err
		}
		sel.Sector = v
	}
	return sel, nil
}
