package sinks

import "context"

// Open constructs the sink backend a scope selects. Both backends satisfy
// the same Sink contract; callers never branch on the backend again.
func Open(ctx context.Context, scope Scope, opts S3Options) (Sink, error) {
	if scope.Remote {
		return NewS3Sink(ctx, scope.Bucket, scope.Prefix, opts)
	}
	return NewFileSink(scope.Dir)
}
