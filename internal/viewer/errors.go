package viewer

import "errors"

var (
	// ErrAttachmentTimeout means the container never attached to a live
	// document within the bounded number of deferred attempts.
	ErrAttachmentTimeout = errors.New("viewer: container never attached to a live document")

	// ErrUnsupportedViewerCapability means neither load path is usable:
	// the scene-description extension failed or is absent, and the viewer
	// exposes no direct structure loader. This is the only unrecoverable
	// load failure.
	ErrUnsupportedViewerCapability = errors.New("viewer: viewer exposes no usable structure loading capability")

	// ErrMissingSource means the container carries no structure source URL.
	ErrMissingSource = errors.New("viewer: container has no structure source")
)
