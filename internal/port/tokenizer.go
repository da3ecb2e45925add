package port

// Tokenizer segments text into an ordered token sequence. Implementations
// delegate to an external segmentation engine; failures surface as
// domain.ErrDependency.
type Tokenizer interface {
	Segment(text string) ([]string, error)
}
