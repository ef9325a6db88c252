package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/prj/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	valid := []string{"api", "my-service", "my_service", "Api2", "0day", "a"}
	for _, name := range valid {
		assert.NoError(t, project.ValidateName(name), "name=%q", name)
	}

	invalid := []string{
		"",
		"home", // 예약어
		"-api",
		"_api",
		".hidden",
		"..",
		"a/b",
		"../escape",
		"a b",
		"한글이름",
		"name\nNAVIGATE_TO:/etc",
	}
	for _, name := range invalid {
		assert.ErrorIs(t, project.ValidateName(name), project.ErrInvalidName, "name=%q", name)
	}
}

func TestCreate_ThenList(t *testing.T) {
	store := project.NewStore(t.TempDir())

	path, err := store.Create("api")
	require.NoError(t, err)
	assert.Equal(t, store.Path("api"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"api"}, names)
}

func TestCreate_Duplicate(t *testing.T) {
	store := project.NewStore(t.TempDir())

	path, err := store.Create("api")
	require.NoError(t, err)

	// 흔적 파일을 넣어 두고, 충돌 시 건드리지 않는지 확인
	marker := filepath.Join(path, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0644))

	_, err = store.Create("api")
	assert.ErrorIs(t, err, project.ErrExists)

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestCreate_MakesRootOnDemand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not", "yet", "there")
	store := project.NewStore(root)

	_, err := store.Create("api")
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolve(t *testing.T) {
	store := project.NewStore(t.TempDir())
	_, err := store.Create("api")
	require.NoError(t, err)

	path, err := store.Resolve("api")
	require.NoError(t, err)
	assert.Equal(t, store.Path("api"), path)

	_, err = store.Resolve("ghost")
	assert.ErrorIs(t, err, project.ErrNotFound)

	_, err = store.Resolve("../escape")
	assert.ErrorIs(t, err, project.ErrInvalidName)
}

func TestResolve_FileIsNotProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notdir"), []byte("x"), 0644))

	store := project.NewStore(root)
	_, err := store.Resolve("notdir")
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestRemove_Recursive(t *testing.T) {
	store := project.NewStore(t.TempDir())
	path, err := store.Create("api")
	require.NoError(t, err)

	nested := filepath.Join(path, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "main.py"), []byte("pass"), 0644))

	require.NoError(t, store.Remove("api"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_NotFound(t *testing.T) {
	store := project.NewStore(t.TempDir())
	err := store.Remove("ghost")
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestList_SortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", ".hidden"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644))

	store := project.NewStore(root)
	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestList_MissingRoot(t *testing.T) {
	store := project.NewStore(filepath.Join(t.TempDir(), "nowhere"))
	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCreateDeleteRoundTrip(t *testing.T) {
	store := project.NewStore(t.TempDir())

	_, err := store.Create("roundtrip")
	require.NoError(t, err)
	require.NoError(t, store.Remove("roundtrip"))

	names, err := store.List()
	require.NoError(t, err)
	assert.NotContains(t, names, "roundtrip")
}
