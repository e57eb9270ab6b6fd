package strategies

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultStrategies lists every known strategy, reference first.
var DefaultStrategies = []string{PositionMap, ShrinkingSet, ByteTable}

// StrategyPool builds checkers from configured strategy names
type StrategyPool struct {
	logger *zerolog.Logger
}

func NewStrategyPool(logger *zerolog.Logger) *StrategyPool {
	return &StrategyPool{
		logger: logger,
	}
}

func (p *StrategyPool) Build(names []string) ([]Checker, error) {
	if len(names) == 0 {
		names = DefaultStrategies
	}

	checkers := make([]Checker, 0, len(names))
	for _, name := range names {
		checker, err := newChecker(name)
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, checker)

		p.logger.Debug().Str("strategy", name).Msg("strategy registered")
	}

	p.logger.Info().
		Int("total_strategies", len(checkers)).
		Msg("strategy pool built successfully")

	return checkers, nil
}

// Known reports whether name refers to a registered strategy.
func Known(name string) bool {
	_, err := newChecker(name)
	return err == nil
}

func newChecker(name string) (Checker, error) {
	switch name {
	case PositionMap:
		return NewPositionMapChecker(), nil
	case ShrinkingSet:
		return NewShrinkingSetChecker(), nil
	case ByteTable:
		return NewByteTableChecker(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
