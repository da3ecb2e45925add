package port

// TokenCache caches segmentation results keyed by document text. A failed
// lookup is a miss, never an error.
type TokenCache interface {
	Get(text string) ([]string, bool)

	Put(text string, tokens []string)
}
