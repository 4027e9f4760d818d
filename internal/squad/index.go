package squad

// Location points at a question inside a dataset.
type Location struct {
	Article   int
	Paragraph int
	QA        int
}

// Index maps question ids to their position in a dataset.
type Index struct {
	dataset   Dataset
	locations map[string]Location
}

// NewIndex builds an id index over the dataset in one traversal.
func NewIndex(dataset Dataset) *Index {
	locations := make(map[string]Location, dataset.QuestionCount())
	for a, article := range dataset.Articles {
		for p, paragraph := range article.Paragraphs {
			for q, qa := range paragraph.QAs {
				locations[qa.ID] = Location{Article: a, Paragraph: p, QA: q}
			}
		}
	}
	return &Index{dataset: dataset, locations: locations}
}

// Lookup returns the paragraph owning id and the question itself.
func (idx *Index) Lookup(id string) (Paragraph, QA, bool) {
	loc, ok := idx.locations[id]
	if !ok {
		return Paragraph{}, QA{}, false
	}
	paragraph := idx.dataset.Articles[loc.Article].Paragraphs[loc.Paragraph]
	return paragraph, paragraph.QAs[loc.QA], true
}
