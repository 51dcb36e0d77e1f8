package frames

// keyPair is one resolved join key: a left column matched against a right
// column. Pair order is the resolution order and is stable across calls.
type keyPair struct {
	left  string
	right string
}

// resolveKeyPairs turns the merge key options plus the two column lists into
// an ordered key-pair list. Pure function of its inputs.
func resolveKeyPairs(cfg mergeConfig, baseCols, otherCols []Column) ([]keyPair, error) {
	baseSet := nameSet(baseCols)
	otherSet := nameSet(otherCols)

	switch {
	case len(cfg.on) > 0 && (len(cfg.leftOn) > 0 || len(cfg.rightOn) > 0):
		return nil, ErrConflictingKeys

	case len(cfg.on) > 0:
		pairs := make([]keyPair, 0, len(cfg.on))
		for _, k := range cfg.on {
			if _, ok := baseSet[k]; !ok {
				return nil, UnknownKeyError{Key: k}
			}
			if _, ok := otherSet[k]; !ok {
				return nil, UnknownKeyError{Key: k}
			}
			pairs = append(pairs, keyPair{left: k, right: k})
		}
		return pairs, nil

	case len(cfg.leftOn) > 0 || len(cfg.rightOn) > 0:
		if len(cfg.leftOn) != len(cfg.rightOn) {
			return nil, KeyLengthMismatchError{Left: len(cfg.leftOn), Right: len(cfg.rightOn)}
		}
		pairs := make([]keyPair, 0, len(cfg.leftOn))
		for i := range cfg.leftOn {
			if _, ok := baseSet[cfg.leftOn[i]]; !ok {
				return nil, UnknownKeyError{Key: cfg.leftOn[i]}
			}
			if _, ok := otherSet[cfg.rightOn[i]]; !ok {
				return nil, UnknownKeyError{Key: cfg.rightOn[i]}
			}
			pairs = append(pairs, keyPair{left: cfg.leftOn[i], right: cfg.rightOn[i]})
		}
		return pairs, nil

	default:
		// Inferred keys follow base-frame column order so that repeated
		// compiles always produce identical plans and programs.
		var pairs []keyPair
		for _, c := range baseCols {
			if _, ok := otherSet[c.Name]; ok {
				pairs = append(pairs, keyPair{left: c.Name, right: c.Name})
			}
		}
		if len(pairs) == 0 {
			return nil, ErrNoKeysResolved
		}
		return pairs, nil
	}
}
