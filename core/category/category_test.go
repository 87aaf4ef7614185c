package category

import (
	"testing"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/stretchr/testify/assert"
)

func TestDerive_Deduplicates(t *testing.T) {
	assert.Equal(t, []string{"FX"}, Derive([]string{"FX", "fx", "Fx"}, ""))
}

func TestDerive_StatusOnly(t *testing.T) {
	assert.Equal(t, []string{WIP}, Derive(nil, "WIP"))
	assert.Equal(t, []string{WIP}, Derive([]string{}, "wip"))
}

func TestDerive_Synonyms(t *testing.T) {
	got := Derive([]string{"modeling", "Modelling", " env ", "3D Env", "environments", "lighting"}, "")
	assert.Equal(t, []string{"MODELLING", "3D ENVIRONMENTS", "LIGHTING"}, got)
}

func TestDerive_UnknownTagsAreTitleCased(t *testing.T) {
	got := Derive([]string{"motion   graphics", "", "  ", "houdini"}, "Done")
	assert.Equal(t, []string{"Motion Graphics", "Houdini"}, got)
}

func TestDerive_OrderIndependentAsSet(t *testing.T) {
	a := Derive([]string{"fx", "compositing", "wip"}, "")
	b := Derive([]string{"wip", "compositing", "FX"}, "WIP")
	assert.ElementsMatch(t, a, b)
}

func TestDerive_Idempotent(t *testing.T) {
	first := Derive([]string{"fx", "Rigging"}, "wip")
	again := Derive(first, "wip")
	assert.ElementsMatch(t, first, again)
}

func TestPresent_PreferredThenSortedExtras(t *testing.T) {
	items := []core.WorkItem{
		{Categories: []string{"Rigging", "FX"}},
		{Categories: []string{"LIGHTING", "Animation"}},
		{Categories: []string{WIP}},
	}
	assert.Equal(t, []string{All, WIP, "FX", "LIGHTING", "Animation", "Rigging"}, Present(items))
}

func TestPresent_Empty(t *testing.T) {
	assert.Equal(t, []string{All}, Present(nil))
}

func TestResolve(t *testing.T) {
	present := []string{All, "FX"}
	assert.Equal(t, "FX", Resolve("FX", present))
	assert.Equal(t, All, Resolve("LIGHTING", present))
	assert.Equal(t, All, Resolve("", present))
}

func TestResolve_CaseInsensitive(t *testing.T) {
	present := Present([]core.WorkItem{{Categories: Derive([]string{"houdini", "fx"}, "")}})
	assert.Equal(t, []string{All, "FX", "Houdini"}, present)
	assert.Equal(t, "Houdini", Resolve("Houdini", present))
	assert.Equal(t, "Houdini", Resolve(" HOUDINI ", present))
	assert.Equal(t, "FX", Resolve("fx", present))
}

func TestFilter(t *testing.T) {
	items := []core.WorkItem{
		{Title: "a", Categories: []string{"FX"}},
		{Title: "b", Categories: []string{"LIGHTING"}},
	}
	assert.Len(t, Filter(items, All), 2)
	fx := Filter(items, "FX")
	if assert.Len(t, fx, 1) {
		assert.Equal(t, "a", fx[0].Title)
	}
	assert.Empty(t, Filter(items, "COMPOSITING"))
}
