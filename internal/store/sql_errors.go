package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default for errors that are not recognised
	// constraint violations, including nil and non-driver errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a UNIQUE constraint rejected the row.
	UniqueViolation

	// ForeignKeyViolation indicates that a referenced row does not exist.
	ForeignKeyViolation

	// NotNullViolation indicates that a NOT NULL column received NULL.
	NotNullViolation
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	default:
		return "unclassified"
	}
}
