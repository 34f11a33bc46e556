package core

import "github.com/leapstack-labs/sqlparser/pkg/token"

// JoinTypeDef defines a dialect join type keyed by its leading keyword.
type JoinTypeDef struct {
	Token         token.TokenType // The trigger token for this join type
	Type          JoinType        // Resulting Join.Type
	OptionalToken token.TokenType // Optional modifier token (OUTER) - 0 means none
	RequiresOn    bool            // true if ON or USING must follow
	AllowsUsing   bool            // true if USING clause is allowed
}
