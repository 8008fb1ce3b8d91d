package domain

import "context"

// GridSource defines the port to the remote spreadsheet.
// Implementations return every row, header row included, as raw cell text.
// Short rows are not padded.
type GridSource interface {
	FetchGrid(ctx context.Context, sheetID, tab string) ([][]string, error)
}

// SnapshotStore keeps a copy of the last good snapshot outside the process.
// It is a warm-start aid only; the spreadsheet stays authoritative.
type SnapshotStore interface {
	// LoadSnapshot returns ErrCacheMiss when nothing has been stored yet.
	LoadSnapshot(ctx context.Context, sheetID, tab string) (*Snapshot, error)
	SaveSnapshot(ctx context.Context, sheetID, tab string, snapshot *Snapshot) error
}
