package frames

// outputColumn is one column of a merge result: its final name and type,
// which side it comes from, and its pre-merge name on that side.
type outputColumn struct {
	Column
	fromRight bool
	original  string
}

// mergeNaming holds the name sets that drive collision handling.
// sameNameKeys are key names appearing as both sides of a pair; overlap are
// the remaining name collisions, which take a side suffix.
type mergeNaming struct {
	sameNameKeys map[string]struct{}
	overlap      map[string]struct{}
}

func computeNaming(baseCols, otherCols []Column, pairs []keyPair) mergeNaming {
	same := make(map[string]struct{})
	for _, p := range pairs {
		if p.left == p.right {
			same[p.left] = struct{}{}
		}
	}
	overlap := make(map[string]struct{})
	otherSet := nameSet(otherCols)
	for _, c := range baseCols {
		if _, shared := otherSet[c.Name]; !shared {
			continue
		}
		if _, key := same[c.Name]; key {
			continue
		}
		overlap[c.Name] = struct{}{}
	}
	return mergeNaming{sameNameKeys: same, overlap: overlap}
}

// composeSchema computes the ordered output columns of a merge: base columns
// first (overlap members suffixed with suffixes[0]), then other columns minus
// same-named keys (overlap members suffixed with suffixes[1]). A duplicate
// surviving suffixing is rejected.
func composeSchema(baseCols, otherCols []Column, pairs []keyPair, suffixes [2]string) ([]outputColumn, mergeNaming, error) {
	naming := computeNaming(baseCols, otherCols, pairs)

	out := make([]outputColumn, 0, len(baseCols)+len(otherCols))
	for _, c := range baseCols {
		name := c.Name
		if _, ok := naming.overlap[name]; ok {
			name += suffixes[0]
		}
		out = append(out, outputColumn{
			Column:   Column{Name: name, Type: c.Type},
			original: c.Name,
		})
	}
	for _, c := range otherCols {
		if _, key := naming.sameNameKeys[c.Name]; key {
			// Same-named keys are represented once, from the left side.
			continue
		}
		name := c.Name
		if _, ok := naming.overlap[name]; ok {
			name += suffixes[1]
		}
		out = append(out, outputColumn{
			Column:    Column{Name: name, Type: c.Type},
			fromRight: true,
			original:  c.Name,
		})
	}

	seen := make(map[string]struct{}, len(out))
	for _, oc := range out {
		if _, dup := seen[oc.Name]; dup {
			return nil, naming, DuplicateColumnError{Name: oc.Name}
		}
		seen[oc.Name] = struct{}{}
	}
	return out, naming, nil
}

// schemaColumns strips the provenance information from a composed schema.
func schemaColumns(schema []outputColumn) []Column {
	cols := make([]Column, len(schema))
	for i, oc := range schema {
		cols[i] = oc.Column
	}
	return cols
}
