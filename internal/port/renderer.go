package port

import "factcloud/internal/domain"

// Renderer hands a word-cloud request to whatever draws or stores it.
type Renderer interface {
	Render(req domain.CloudRequest) error
}
