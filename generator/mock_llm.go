package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
)

// MockLLM returns a fixed, schema-valid library for local runs; it never calls out.
type MockLLM struct{}

var (
	mockSolutionRe = regexp.MustCompile(`Tipo de solución de IA a implementar: (.+)`)
	mockSectorRe   = regexp.MustCompile(`Sector empresarial: (.+)`)
)

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	solution, sector := "IA", "operaciones"
	if mm := mockSolutionRe.FindStringSubmatch(prompt.User); len(mm) == 2 {
		solution = mm[1]
	}
	if mm := mockSectorRe.FindStringSubmatch(prompt.User); len(mm) == 2 {
		sector = mm[1]
	}

	item := func(obj, body, tip string) PromptItem {
		return PromptItem{Objective: obj, Prompt: body, Tip: tip}
	}
	lib := Library{
		Context: fmt.Sprintf("%s permite al equipo de operaciones en %s detectar cuellos de botella y reducir desperdicios con datos del día a día.", solution, sector),
		MainPrompts: []Category{
			{Category: "Optimización de Procesos", Items: []PromptItem{
				item("Mapear cuellos de botella", "Analiza el flujo de trabajo en la línea de [NOMBRE_PROCESO] para identificar cuellos de botella en [ETAPA_ESPECÍFICA].", "Incluye tiempos de ciclo reales."),
				item("Reducir tiempo de ciclo", "Propón tres cambios para reducir el tiempo de ciclo de [PROCESO] de [TIEMPO_ACTUAL] a [TIEMPO_OBJETIVO].", "Compara contra el Lead Time."),
			}},
			{Category: "Control de Calidad", Items: []PromptItem{
				item("Priorizar defectos", "Clasifica los defectos de [PRODUCTO] del último [PERIODO] con un análisis de Pareto.", "Usa datos de al menos un mes."),
			}},
		},
		AdvancedPrompts: []PromptItem{
			item("Causa raíz predictiva", "Con el historial de paros de [EQUIPO], predice las tres causas raíz más probables para [MES].", "Valida con el equipo de mantenimiento."),
		},
		BestPractices: []string{
			"Empieza con un solo proceso piloto.",
			"Mide el OEE antes y después.",
		},
	}
	out, err := json.Marshal(lib)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
