package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/db"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/repository"
	"github.com/alexanderramin/regwise/internal/scheduler"
	"github.com/alexanderramin/regwise/internal/service"
	"github.com/alexanderramin/regwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `{
  "courses": {
    "198:111": {"title": "Intro to Computer Science", "credits": 4, "core_codes": ["QR"],
      "sections": [{"section_number": "01", "index": "09214", "is_open": true,
        "meetings": [{"day": "M", "start_time": "10:20 AM", "end_time": "11:40 AM", "campus": "LIV"}]}]},
    "640:151": {"title": "Calculus I", "credits": 4, "core_codes": ["QQ"],
      "sections": [
        {"section_number": "01", "index": "11111", "is_open": true,
          "meetings": [{"day": "T", "start_time": "8:10 AM", "end_time": "9:30 AM"}]},
        {"section_number": "02", "index": "11112", "is_open": true,
          "meetings": [{"day": "M", "start_time": "10:20 AM", "end_time": "11:40 AM"}]}]},
    "355:101": {"title": "Expository Writing", "credits": 3, "core_codes": ["WCD"],
      "sections": [{"section_number": "01", "index": "22222", "is_open": true,
        "meetings": [{"day": "W", "start_time": "2:00 PM", "end_time": "3:20 PM"}]}]}
  }
}`

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCatalogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	catalogs := service.NewCatalogService(repo, uow, catalog.NewHolder(nil), catalog.DefaultOptions())
	return &App{
		Catalog:  catalogs,
		Planner:  service.NewPlanService(catalogs, scheduler.DefaultLimits(), ""),
		Defaults: domain.DefaultConstraints(),
	}
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fall-2025.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogJSON), 0o644))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func importedApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	_, err := executeCmd(t, app, "catalog", "import", writeCatalog(t))
	require.NoError(t, err)
	return app
}

func TestCatalogImportAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "catalog", "import", writeCatalog(t), "--source", "Fall 2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Fall 2025")
	assert.Contains(t, out, "Courses")

	out, err = executeCmd(t, app, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Fall 2025")
	assert.Contains(t, out, "3")
}

func TestCatalogImport_BadFormatFlag(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "catalog", "import", writeCatalog(t), "--format", "xml")
	assert.ErrorContains(t, err, "unknown catalog format")
}

func TestCatalogRemove_ByPrefix(t *testing.T) {
	app := importedApp(t)
	list, err := app.Catalog.ListSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	out, err := executeCmd(t, app, "catalog", "remove", list[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, list[0].ID)

	_, err = executeCmd(t, app, "catalog", "remove", "zzzz")
	assert.ErrorContains(t, err, "catalog not found")
}

func TestCourseCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "course", "640:151")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus I")
	assert.Contains(t, out, "11112")

	_, err = executeCmd(t, app, "course", "999:1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCoreCmd(t *testing.T) {
	out, err := executeCmd(t, importedApp(t), "core", "wcd")
	require.NoError(t, err)
	assert.Contains(t, out, "355:101")
}

func TestPlanCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "plan", "198:111,640:151", "--no-fill")
	require.NoError(t, err)
	assert.Contains(t, out, "198:111")
	assert.Contains(t, out, "640:151")
	assert.Contains(t, out, "09214, 11111")
	assert.Contains(t, out, "PARTIAL")
}

func TestPlanCmd_ExcludedDayBlocksCourse(t *testing.T) {
	out, err := executeCmd(t, importedApp(t), "plan", "198:111", "355:101", "--exclude-days", "M", "--no-fill")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT SCHEDULED")
	assert.Contains(t, out, "22222")
}

func TestPlanCmd_CoreCodes(t *testing.T) {
	out, err := executeCmd(t, importedApp(t), "plan", "--core", "WCD", "--no-fill")
	require.NoError(t, err)
	assert.Contains(t, out, "Expository Writing")
}

func TestPlanCmd_FlagErrors(t *testing.T) {
	app := importedApp(t)

	_, err := executeCmd(t, app, "plan", "198:111", "--start-after", "noon")
	assert.ErrorContains(t, err, "unrecognized time")

	_, err = executeCmd(t, app, "plan", "198:111", "--exclude-days", "Sat")
	assert.ErrorContains(t, err, "unrecognized day")

	_, err = executeCmd(t, app, "plan", "198:111", "--credits", "20")
	assert.ErrorContains(t, err, "INVALID_REQUEST")
}

func TestPlanCmd_NoCatalog(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "198:111")
	assert.ErrorContains(t, err, "NO_CATALOG")
}

func TestOptionsCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "options", "198:111", "640:151")
	require.NoError(t, err)
	assert.Contains(t, out, "1 option(s)")
	assert.Contains(t, out, "OPTION 1")

	out, err = executeCmd(t, app, "options", "640:151", "--max", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 option(s)")

	_, err = executeCmd(t, app, "options")
	assert.Error(t, err)
}
