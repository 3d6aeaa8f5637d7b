package objectstore

import (
	"context"
	"time"
)

// Object is a stored blob's listing metadata.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store abstracts the bucket operations the pipeline needs: fetching raw
// export documents, promoting them to the trusted bucket and copying them to
// the backup bucket.
type Store interface {
	List(ctx context.Context, bucket, prefix string) ([]Object, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Copy(ctx context.Context, sourceBucket, key, destinationBucket string) error
	Delete(ctx context.Context, bucket, key string) error
}
