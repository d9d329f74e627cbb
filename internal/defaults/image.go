package defaults

// ImageSource tracks which URL should be rendered for a cover or avatar.
// The candidate is shown optimistically; once a load failure is reported the
// source swaps to the fallback and never switches back for this instance.
type ImageSource struct {
	src      string
	fallback string
	failed   bool
}

// NewImageSource builds an ImageSource for a candidate URL. A candidate that
// is already known to be invalid starts on the fallback immediately.
func NewImageSource(src, fallback string) *ImageSource {
	return &ImageSource{
		src:      src,
		fallback: fallback,
		failed:   !ValidCoverURL(src),
	}
}

// Current returns the URL that should be rendered right now.
func (s *ImageSource) Current() string {
	if s.failed {
		return s.fallback
	}
	return s.src
}

// MarkFailed records that loading the candidate failed. One-way, one-shot.
func (s *ImageSource) MarkFailed() {
	s.failed = true
}

// Failed reports whether the fallback is active.
func (s *ImageSource) Failed() bool {
	return s.failed
}
