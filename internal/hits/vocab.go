package hits

// Vocabulary maps each distinct token to a column index in first-seen order.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// BuildVocabulary scans sentences in order, and tokens within a sentence in
// order, assigning the next free index to every unseen token.
func BuildVocabulary(sentences []Sentence) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if _, ok := v.index[tok]; ok {
				continue
			}
			v.index[tok] = len(v.terms)
			v.terms = append(v.terms, tok)
		}
	}
	return v
}

// Index returns the column of token.
func (v *Vocabulary) Index(token string) (int, bool) {
	j, ok := v.index[token]
	return j, ok
}

// Term returns the token at column j.
func (v *Vocabulary) Term(j int) string { return v.terms[j] }

// Len is the number of distinct tokens.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Terms returns the tokens ordered by column.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
