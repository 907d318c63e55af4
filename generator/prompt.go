package generator

import (
	"fmt"
	"strings"
)

// Prompt is what gets sent to the model for one generation.
type Prompt struct {
	System     string
	User       string
	SchemaName string
	Schema     map[string]any
}

const librarySchemaName = "prompt_library"

const systemInstruction = "Responde únicamente con un objeto JSON que cumpla el esquema indicado. " +
	"No agregues explicaciones, comentarios ni bloques de código."

// BuildLibraryPrompt embeds the selection into the operations consultant template.
func BuildLibraryPrompt(sel Selection) Prompt {
	var sb strings.Builder
	sb.WriteString("Actúa como un Consultor Senior de Operaciones, Experto en Lean Manufacturing y Eficiencia de Procesos.\n")
	sb.WriteString("Tu objetivo es generar una biblioteca de prompts útiles EXCLUSIVAMENTE para el ÁREA DE OPERACIONES.\n\n")
	sb.WriteString("Contexto de la solicitud:\n")
	sb.WriteString(fmt.Sprintf("- Tipo de solución de IA a implementar: %s\n", sel.Solution))
	sb.WriteString(fmt.Sprintf("- Sector empresarial: %s\n\n", sel.Sector))
	sb.WriteString("REGLA CRÍTICA DE FORMATO:\n")
	sb.WriteString("Todos los prompts DEBEN incluir campos de reemplazo entre corchetes para que el responsable de operaciones los personalice.\n")
	sb.WriteString("Ejemplo: \"Analiza el flujo de trabajo en la línea de [NOMBRE_PROCESO] para identificar cuellos de botella en [ETAPA_ESPECÍFICA]...\"\n\n")
	sb.WriteString("Sigue estrictamente esta estructura:\n")
	sb.WriteString("1. Contexto operativo (máx 3 líneas) sobre cómo la IA optimiza el día a día en la planta o área de servicio.\n")
	sb.WriteString("2. Lista principal de 12-15 prompts divididos en categorías como: Optimización de Procesos, Control de Calidad, Gestión de Inventarios / Suministros, Mantenimiento y Seguridad.\n")
	sb.WriteString("3. 5 prompts avanzados enfocados en automatización industrial, análisis de causa raíz predictivo e integración de flujos de trabajo complejos.\n")
	sb.WriteString("4. 5 consejos prácticos para que un Jefe de Operaciones implemente estas plantillas para reducir costos y tiempos.\n\n")
	sb.WriteString("Los prompts deben ser prácticos, técnicos, orientados a la métrica (OEE, Tiempos de Ciclo, Lead Time) y la reducción de desperdicios.\n")

	return Prompt{
		System:     systemInstruction,
		User:       sb.String(),
		SchemaName: librarySchemaName,
		Schema:     LibrarySchema(),
	}
}
