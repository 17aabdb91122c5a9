package render_test

import (
	"strings"
	"testing"

	"diff-analyzer/core/render"

	"github.com/stretchr/testify/assert"
)

func TestTable_ContainsHeadersAndCells(t *testing.T) {
	out := render.Table(
		[]string{"Enemy", "Pool"},
		[][]string{
			{"ED_Grunt", "enemy_pool"},
			{"ED_CaveLeech", "stationary_pool"},
		},
	)

	for _, want := range []string{"Enemy", "Pool", "ED_Grunt", "enemy_pool", "ED_CaveLeech", "stationary_pool"} {
		assert.Contains(t, out, want)
	}
}

func TestTable_PreservesRowOrder(t *testing.T) {
	out := render.Table(
		[]string{"Enemy"},
		[][]string{{"ED_First"}, {"ED_Second"}},
	)

	assert.Less(t, strings.Index(out, "ED_First"), strings.Index(out, "ED_Second"))
}

func TestTable_EmptyRows(t *testing.T) {
	out := render.Table([]string{"Enemy", "Pool"}, nil)
	assert.Contains(t, out, "Enemy")
}
