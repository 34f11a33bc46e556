package dialect

// This file contains pre-built ClauseDef definitions - the "menu items" that
// dialects can compose from. Each ClauseDef bundles a token, handler, slot,
// and metadata together.

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// --- Standard Clause Definitions ---
// Handlers are explicitly typed to spi.ClauseHandler to enable type assertions at call site.

var (
	// StandardWhere is the standard WHERE clause definition.
	StandardWhere = core.ClauseDef{
		Token:    token.WHERE,
		Handler:  spi.ClauseHandler(ParseWhere),
		Slot:     core.SlotWhere,
		Keywords: []string{"WHERE"},
	}

	// StandardGroupBy is the standard GROUP BY clause definition.
	StandardGroupBy = core.ClauseDef{
		Token:    token.GROUP,
		Handler:  spi.ClauseHandler(ParseGroupBy),
		Slot:     core.SlotGroupBy,
		Keywords: []string{"GROUP", "BY"},
	}

	// StandardHaving is the standard HAVING clause definition.
	StandardHaving = core.ClauseDef{
		Token:    token.HAVING,
		Handler:  spi.ClauseHandler(ParseHaving),
		Slot:     core.SlotHaving,
		Keywords: []string{"HAVING"},
	}

	// StandardQualify is the QUALIFY clause definition (Snowflake).
	StandardQualify = core.ClauseDef{
		Token:    TokenQualify,
		Handler:  spi.ClauseHandler(ParseQualify),
		Slot:     core.SlotQualify,
		Keywords: []string{"QUALIFY"},
	}
)

// StandardSelectClauses is the typical ANSI SELECT clause sequence.
// Dialects can use this directly or compose their own from the individual defs.
var StandardSelectClauses = []core.ClauseDef{
	StandardWhere,
	StandardGroupBy,
	StandardHaving,
}
