package parser

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Window specification parsing: OVER clauses, PARTITION BY, ORDER BY, frame specs.
//
// Grammar:
//
//	window_spec   → identifier | "(" [PARTITION BY expr_list] [ORDER BY order_list] [frame_spec] ")"
//	frame_spec    → (ROWS|RANGE|GROUPS) frame_extent
//	frame_extent  → BETWEEN frame_bound AND frame_bound | frame_bound
//	frame_bound   → UNBOUNDED PRECEDING | UNBOUNDED FOLLOWING | CURRENT ROW | expr PRECEDING | expr FOLLOWING

// parseWindowSpec parses a window specification. OVER has been consumed.
func (p *Parser) parseWindowSpec() (*core.WindowSpec, error) {
	spec := &core.WindowSpec{}

	// Named window reference
	if !p.check(token.LPAREN) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		spec.Name = &name
		return spec, nil
	}
	p.nextToken() // consume (

	var err error
	// PARTITION BY
	if p.match(token.PARTITION) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		if spec.PartitionBy, err = p.parseExpressionList(); err != nil {
			return nil, err
		}
	}

	// ORDER BY
	if p.match(token.ORDER) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		if spec.OrderBy, err = p.parseOrderByList(); err != nil {
			return nil, err
		}
	}

	// Frame specification
	if p.check(token.ROWS) || p.check(token.RANGE) || p.check(token.GROUPS) {
		if spec.Frame, err = p.parseFrameSpec(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return spec, nil
}

// parseFrameSpec parses a window frame specification.
func (p *Parser) parseFrameSpec() (*core.FrameSpec, error) {
	frame := &core.FrameSpec{}

	// Frame type
	switch {
	case p.match(token.ROWS):
		frame.Type = core.FrameRows
	case p.match(token.RANGE):
		frame.Type = core.FrameRange
	case p.match(token.GROUPS):
		frame.Type = core.FrameGroups
	}

	var err error
	// BETWEEN ... AND ...
	if p.match(token.BETWEEN) {
		if frame.Start, err = p.parseFrameBound(); err != nil {
			return nil, err
		}
		if err := p.expect(token.AND); err != nil {
			return nil, err
		}
		if frame.End, err = p.parseFrameBound(); err != nil {
			return nil, err
		}
		return frame, nil
	}

	// Single bound
	if frame.Start, err = p.parseFrameBound(); err != nil {
		return nil, err
	}
	return frame, nil
}

// parseFrameBound parses a frame bound.
func (p *Parser) parseFrameBound() (*core.FrameBound, error) {
	bound := &core.FrameBound{}

	switch {
	case p.match(token.UNBOUNDED):
		switch {
		case p.match(token.PRECEDING):
			bound.Type = core.FrameUnboundedPreceding
		case p.match(token.FOLLOWING):
			bound.Type = core.FrameUnboundedFollowing
		default:
			return nil, p.errorf(ErrUnexpectedToken, "PRECEDING or FOLLOWING", p.token)
		}

	case p.match(token.CURRENT):
		if err := p.expect(token.ROW); err != nil {
			return nil, err
		}
		bound.Type = core.FrameCurrentRow

	default:
		// N PRECEDING or N FOLLOWING
		var err error
		if bound.Offset, err = p.parseExpression(); err != nil {
			return nil, err
		}
		switch {
		case p.match(token.PRECEDING):
			bound.Type = core.FramePreceding
		case p.match(token.FOLLOWING):
			bound.Type = core.FrameFollowing
		default:
			return nil, p.errorf(ErrUnexpectedToken, "PRECEDING or FOLLOWING", p.token)
		}
	}

	return bound, nil
}
