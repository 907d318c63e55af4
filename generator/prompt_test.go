package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLibraryPromptEmbedsSelection(t *testing.T) {
	p := BuildLibraryPrompt(Selection{Solution: "Agentes de IA", Sector: "Manufactura"})

	assert.Contains(t, p.User, "Tipo de solución de IA a implementar: Agentes de IA")
	assert.Contains(t, p.User, "Sector empresarial: Manufactura")
	assert.Contains(t, p.User, "[NOMBRE_PROCESO]")
	assert.Contains(t, p.User, "12-15 prompts")
	assert.Contains(t, p.User, "OEE")
	assert.NotEmpty(t, p.System)
	assert.Equal(t, "prompt_library", p.SchemaName)
	assert.Equal(t, LibrarySchema(), p.Schema)
}

func TestLibrarySchemaIsFreshCopy(t *testing.T) {
	a := LibrarySchema()
	a["type"] = "array"
	assert.Equal(t, "object", LibrarySchema()["type"])
}
