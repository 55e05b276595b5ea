package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Prusa COREONE", "Prusa CORE One"},
		{"Prusa COREONEL", "Prusa CORE One L"},
		{"Prusa COREONE HF0.4 nozzle", "Prusa CORE One HF 0.4 nozzle"},
		{"0.20mm SPEED @COREONE HF0.4", "0.20mm SPEED @CORE One HF 0.4"},
		{"Prusa MK4S", "Prusa MK4S"},
		{"COREONESQUE", "COREONESQUE"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeProfileName(c.in), c.in)
	}
}

func TestExtractPrinterBaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Prusa CORE One 0.4 nozzle", "Prusa CORE One"},
		{"Prusa CORE One HF0.4 nozzle", "Prusa CORE One"},
		{"Prusa CORE One hf0.6 NOZZLE", "Prusa CORE One"},
		{"Prusa CORE One", "Prusa CORE One"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExtractPrinterBaseName(c.in), c.in)
	}
}

func TestModelID(t *testing.T) {
	assert.Equal(t, "Prusa_CORE_One", ModelID("Prusa", "CORE One"))
	assert.Equal(t, "Prusa_CORE_One_HF", ModelID("Prusa", "Prusa_CORE_One_HF"))
	assert.Equal(t, "Prusa_MK4_S", ModelID("Prusa", "MK4-S"))
}
