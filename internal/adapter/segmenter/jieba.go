package segmenter

import (
	"fmt"

	"github.com/yanyiwu/gojieba"

	"zhprep/internal/domain"
)

// JiebaTokenizer segments Chinese text with the jieba engine. Construct once
// and call Close when done; the underlying engine holds C-allocated
// dictionaries.
type JiebaTokenizer struct {
	jieba *gojieba.Jieba
	hmm   bool
}

// NewJiebaTokenizer initializes the jieba engine with its bundled
// dictionaries. HMM enables statistical discovery of words outside the
// dictionary.
func NewJiebaTokenizer(hmm bool) (*JiebaTokenizer, error) {
	j := gojieba.NewJieba()
	if j == nil {
		return nil, fmt.Errorf("%w: jieba engine failed to initialize", domain.ErrDependency)
	}
	return &JiebaTokenizer{jieba: j, hmm: hmm}, nil
}

// Segment cuts text into an ordered token sequence.
func (t *JiebaTokenizer) Segment(text string) ([]string, error) {
	if t.jieba == nil {
		return nil, fmt.Errorf("%w: jieba engine is closed", domain.ErrDependency)
	}
	return t.jieba.Cut(text, t.hmm), nil
}

// Close releases the engine. Segment calls after Close return a dependency
// error rather than crashing.
func (t *JiebaTokenizer) Close() {
	if t.jieba != nil {
		t.jieba.Free()
		t.jieba = nil
	}
}
