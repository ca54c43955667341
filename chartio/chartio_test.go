package chartio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/amortization"
	"projectio/model"
)

func TestAmortizationChart_RendersNonEmptyHTML(t *testing.T) {
	rows := amortization.Schedule(10000, 8, 5, 0)
	html, err := AmortizationChart("test loan", rows)
	assert.NoError(t, err)
	assert.NotEmpty(t, html)
	assert.Contains(t, html, "<html>")
}

func TestTornadoChart_RendersNonEmptyHTML(t *testing.T) {
	rows := []model.TornadoRow{
		{Variable: "revenue", LowNPV: 100, BaseNPV: 200, HighNPV: 300, Impact: 200},
		{Variable: "costs", LowNPV: 150, BaseNPV: 200, HighNPV: 250, Impact: 100},
	}
	html, err := TornadoChart(rows)
	assert.NoError(t, err)
	assert.NotEmpty(t, html)
	assert.Contains(t, html, "<html>")
}
