package starmap

import (
	"context"
	"fmt"
	"testing"

	"scdb-loader/core/content"
	"scdb-loader/core/content/contenttest"
	"scdb-loader/feature/localisation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeObject(t *testing.T, tree *content.Tree, name, attrs string) {
	t.Helper()
	body := fmt.Sprintf(`<StarMapObject.%s %s/>`, name, attrs)
	contenttest.Write(t, tree, tree.Config().Starmap+"/"+name+".xml", body)
}

func TestLoader_Load(t *testing.T) {
	tree := contenttest.NewTree(t)
	writeObject(t, tree, "Stanton", `__ref="stanton" name="@Stanton" type="Star" size="696000"`)
	writeObject(t, tree, "Hurston", `__ref="hurston" name="@Stanton1" parent="stanton" type="Planet"`)
	writeObject(t, tree, "ArcCorp", `__ref="arccorp" name="ArcCorp" parent="stanton"`)
	writeObject(t, tree, "Aberdeen", `__ref="aberdeen" parent="hurston"`)
	writeObject(t, tree, "JumpPoint", `__ref="jp_pyro" parent="stanton" jumpDestination="pyro"`)
	writeObject(t, tree, "Lost", `__ref="lost" parent="nowhere"`)

	core, logs := observer.New(zapcore.WarnLevel)
	loc := localisation.New(map[string]string{"Stanton": "Stanton System", "Stanton1": "Hurston"})

	objects, err := NewLoader(tree, loc, zap.New(core)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, objects.Len())

	stanton, ok := objects.Get("stanton")
	require.True(t, ok)
	assert.Equal(t, "Stanton System", stanton.Name)
	assert.Equal(t, 696000.0, stanton.Size)
	assert.Equal(t, []string{"arccorp", "hurston", "jp_pyro"}, stanton.Children)

	hurston, _ := objects.Get("hurston")
	assert.Equal(t, "Hurston", hurston.Name)
	assert.Equal(t, "stanton", hurston.Parent)
	assert.Equal(t, []string{"aberdeen"}, hurston.Children)

	jump, _ := objects.Get("jp_pyro")
	assert.Empty(t, jump.JumpDestination)

	lost, _ := objects.Get("lost")
	assert.Empty(t, lost.Parent)

	unresolved := logs.FilterMessage("Unresolved starmap reference").All()
	require.Len(t, unresolved, 2)
	assert.Equal(t, "pyro", unresolved[0].ContextMap()["target"])
	assert.Equal(t, "nowhere", unresolved[1].ContextMap()["target"])
}

func TestLoader_CycleRejected(t *testing.T) {
	tree := contenttest.NewTree(t)
	writeObject(t, tree, "A", `__ref="a" parent="b"`)
	writeObject(t, tree, "B", `__ref="b" parent="a"`)
	writeObject(t, tree, "C", `__ref="c" parent="c"`)

	core, logs := observer.New(zapcore.WarnLevel)
	objects, err := NewLoader(tree, localisation.New(nil), zap.New(core)).Load(context.Background())
	require.NoError(t, err)

	a, _ := objects.Get("a")
	b, _ := objects.Get("b")
	c, _ := objects.Get("c")

	// a is linked first, so b's link back to a is the one dropped.
	assert.Equal(t, "b", a.Parent)
	assert.Empty(t, b.Parent)
	assert.Equal(t, []string{"a"}, b.Children)
	assert.Empty(t, c.Parent)
	assert.Empty(t, c.Children)

	assert.Equal(t, 2, logs.FilterMessage("Dropping parent link that creates a cycle").Len())
}

func TestLoader_FallbackID(t *testing.T) {
	tree := contenttest.NewTree(t)
	writeObject(t, tree, "Pyro", `name="Pyro"`)

	objects, err := NewLoader(tree, localisation.New(nil), nil).Load(context.Background())
	require.NoError(t, err)

	_, ok := objects.Get("Pyro")
	assert.True(t, ok)
}
