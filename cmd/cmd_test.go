package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"scdb-loader/core/content/contenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestItemCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laser.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<EntityClassDefinition.KLWE_Laser><Components>
  <SAttachableComponentParams><AttachDef Type="WeaponGun" Manufacturer="KLWE"/></SAttachableComponentParams>
</Components></EntityClassDefinition.KLWE_Laser>`), 0o644))

	out, err := execute(t, "item", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"className": "KLWE_Laser"`)
	assert.Contains(t, out, `"manufacturer": "KLWE"`)

	_, err = execute(t, "item", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestLoadCommand(t *testing.T) {
	tree := contenttest.NewTree(t)
	cfg := tree.Config()
	contenttest.Write(t, tree, cfg.Localization+"/english/global.ini", "vehicle_NameTitan=Avenger Titan\n")
	contenttest.Write(t, tree, cfg.Spaceships+"/titan.xml",
		`<EntityClassDefinition.AEGS_Avenger_Titan><Components><VehicleComponentParams vehicleName="@vehicle_NameTitan"/></Components></EntityClassDefinition.AEGS_Avenger_Titan>`)
	contenttest.Write(t, tree, cfg.Shops+"/shop.xml",
		`<Shop.S><inventory><ShopProduct itemRef="not_a_real_item"/></inventory></Shop.S>`)

	outDir := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "stale.json"), []byte("[]"), 0o644))

	out, err := execute(t, "load", "--input", cfg.Root, "--output", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Finished!")
	assert.Contains(t, out, "Load Ships")

	assert.NoFileExists(t, filepath.Join(outDir, "stale.json"))
	ships, err := os.ReadFile(filepath.Join(outDir, "ships.json"))
	require.NoError(t, err)
	assert.Contains(t, string(ships), "Avenger Titan")

	runLogs, _ := filepath.Glob(filepath.Join(outDir, "loader-*.log"))
	assert.Len(t, runLogs, 1)

	missingLogs, _ := filepath.Glob(filepath.Join(outDir, "missing_shops-*.log"))
	require.Len(t, missingLogs, 1)
	missing, err := os.ReadFile(missingLogs[0])
	require.NoError(t, err)
	assert.Contains(t, string(missing), "Loader Starting")
	assert.Contains(t, string(missing), "not_a_real_item")
}

func TestLoadCommand_NoInput(t *testing.T) {
	t.Setenv("CONTENT_ROOT", "")
	_, err := execute(t, "load", "--input", "", "--output", t.TempDir())
	assert.ErrorContains(t, err, "no content root")
}
