package port

import "context"

// FactSource supplies raw fact sentences.
type FactSource interface {
	// Facts returns every non-blank fact line the source holds, in source order.
	Facts(ctx context.Context) ([]string, error)
}

// FileWalker discovers fact files under a root directory.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}
