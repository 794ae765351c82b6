package chunker

import "fmt"

// Fragment is one window of document text. StartOffset is the index of
// the fragment's first character in the original text.
type Fragment struct {
	Text        string
	StartOffset int
}

// Split cuts text into fixed-size character windows. Each window after
// the first starts size-overlap characters past the previous one; the
// last window may be shorter than size. Empty input yields no fragments.
func Split(text string, size, overlap int) ([]Fragment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunker: chunk size must be > 0, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunker: overlap must be in [0, size), got %d", overlap)
	}
	if len(text) == 0 {
		return nil, nil
	}

	stride := size - overlap
	var fragments []Fragment
	for start := 0; start < len(text); start += stride {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		fragments = append(fragments, Fragment{
			Text:        text[start:end],
			StartOffset: start,
		})
		if end == len(text) {
			break
		}
	}
	return fragments, nil
}
