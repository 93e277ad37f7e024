package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	raw := `- name: population
  kind: growth
  principal: "1200000"
  rate: "0.025"
  time: "18"
  target_final_value: "2000000"
- name: carbon dating
  kind: decay
  half_life: "5730"
  r0: "1"
  time: "8223"
`
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	scenarios, err := Load(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	growth := scenarios[0]
	require.Equal(t, KindGrowth, growth.Kind)
	require.NotNil(t, growth.Principal)
	require.Equal(t, 1_200_000.0, *growth.Principal)
	require.Nil(t, growth.FinalValue)
	require.NotNil(t, growth.TargetFinalValue)

	decay := scenarios[1]
	require.Equal(t, KindDecay, decay.Kind)
	require.NotNil(t, decay.HalfLife)
	require.Equal(t, 5730.0, *decay.HalfLife)
	require.Nil(t, decay.RT)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: x\n  kind: linear\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsBadNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: x\n  kind: growth\n  principal: \"abc\"\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
