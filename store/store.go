package store

// Iterator consists from only one method which returns uid of the next vector
type Iterator interface {
	Next() (string, bool)
}

// Store keeps benchmark inputs and outputs: raw feature vectors by uid
// and serialized per-run reports. It is not a search index - hashed codes
// are never organized here for lookup.
type Store interface {
	AddVector(vec []float64) (string, error)
	GetVector(id string) ([]float64, error)
	GetVectorsIterator() (Iterator, error)
	SetRunReport(runId string, report []byte) error
	GetRunReport(runId string) ([]byte, error)
	Clear() error
}
