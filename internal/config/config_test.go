package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9*60, cfg.OpenMinute())
	assert.Equal(t, 21*60, cfg.CloseMinute())
	assert.Equal(t, 15, cfg.BufferMinutes)
	assert.Equal(t, 0.11, cfg.TaxRate)
	assert.Equal(t, 30.0, cfg.RequiredDepositPct)
	assert.Nil(t, cfg.TasksFor("shooting"))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STUDIO_OPEN_TIME", "08:30")
	t.Setenv("STUDIO_CLOSE_TIME", "22:00")
	t.Setenv("BUFFER_MINUTES", "30")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("WORKFLOW_AUTOMATION", `{"shooting":["Prepare equipment"]}`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8*60+30, cfg.OpenMinute())
	assert.Equal(t, 22*60, cfg.CloseMinute())
	assert.Equal(t, 30, cfg.BufferMinutes)
	assert.Equal(t, 0.2, cfg.TaxRate)
	assert.Equal(t, []string{"Prepare equipment"}, cfg.TasksFor("shooting"))
}

func TestLoad_RejectsBadClock(t *testing.T) {
	t.Setenv("STUDIO_OPEN_TIME", "9am")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadWorkflowJSON(t *testing.T) {
	t.Setenv("WORKFLOW_AUTOMATION", "{not json")
	_, err := Load()
	assert.Error(t, err)
}
