package dataset

import "fmt"

// DataSourceError reports a dataset that is unreachable or malformed beyond
// row-level recovery, such as a missing file or a wrong column set.
// Row-level coercion failures are not data source errors; those rows are
// filtered out later.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
