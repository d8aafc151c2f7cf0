package domain

import "context"

// WriterPort commits one classification record set
// implementations serialize commits against every other write
type WriterPort interface {
	Commit(ctx context.Context, in CommitInput) (string, error)
}

// ReaderPort serves history listing and detail lookups
type ReaderPort interface {
	List(ctx context.Context, in ListInput) (HistoryPage, error)
	Detail(ctx context.Context, id string) (HistoryDetail, error)
}

// PurgePort clears every stored record across all three collections
type PurgePort interface {
	Purge(ctx context.Context) error
}

// ServicePort is the full service contract for history
type ServicePort interface {
	WriterPort
	ReaderPort
	PurgePort
}
