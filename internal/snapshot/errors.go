package snapshot

import "fmt"

// FetchError collapses every way loading prices can fail into one kind.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch data from Binance API: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
