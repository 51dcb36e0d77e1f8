package frames

import "fmt"

// Sentinel errors for merge key resolution. All frame errors indicate a
// malformed pipeline, never a transient condition; they are returned
// immediately and never downgraded.
var (
	// ErrConflictingKeys is returned when On is combined with LeftOn or RightOn.
	ErrConflictingKeys = fmt.Errorf(`cannot use "on" together with "left_on" or "right_on"`)

	// ErrNoKeysResolved is returned when no keys were given and the two
	// frames share no column names to infer keys from.
	ErrNoKeysResolved = fmt.Errorf("no common columns to merge on")
)

// UnknownKeyError reports a column name that does not exist in the frame it
// was looked up in.
type UnknownKeyError struct {
	Key string
}

func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("column %q not found", e.Key)
}

// KeyLengthMismatchError reports LeftOn and RightOn lists of different lengths.
type KeyLengthMismatchError struct {
	Left  int
	Right int
}

func (e KeyLengthMismatchError) Error() string {
	return fmt.Sprintf("left_on has %d keys but right_on has %d", e.Left, e.Right)
}

// UnsupportedJoinKindError reports a join kind string outside the recognized
// spellings.
type UnsupportedJoinKindError struct {
	How string
}

func (e UnsupportedJoinKindError) Error() string {
	return fmt.Sprintf("unsupported join kind %q", e.How)
}

// DuplicateColumnError reports two output columns resolving to the same name.
type DuplicateColumnError struct {
	Name string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q", e.Name)
}

// UnsupportedFeatureError reports a requested merge feature that the compiler
// rejects outright (index joins, row sorting, indicator columns, relation
// validation, self-merge).
type UnsupportedFeatureError struct {
	Feature string
}

func (e UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Feature)
}
