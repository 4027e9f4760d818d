package review

import "squadtrim/internal/squad"

// Record is the human-reviewable view of one sampled question.
type Record struct {
	Context            string         `json:"context"`
	Answers            []squad.Answer `json:"answers"`
	OriginalQuestion   string         `json:"original_question"`
	NewQuestion        string         `json:"new_question"`
	OriginalPrediction string         `json:"original_prediction"`
	NewPrediction      string         `json:"new_prediction"`
}

// Sources are the read-only inputs records are assembled from.
type Sources struct {
	Original              *squad.Index
	Compressed            *squad.Index
	OriginalPredictions   squad.Predictions
	CompressedPredictions squad.Predictions
}

// NewSources indexes both datasets once for repeated extraction.
func NewSources(original, compressed squad.Dataset, originalPredictions, compressedPredictions squad.Predictions) Sources {
	return Sources{
		Original:              squad.NewIndex(original),
		Compressed:            squad.NewIndex(compressed),
		OriginalPredictions:   originalPredictions,
		CompressedPredictions: compressedPredictions,
	}
}

// Extract assembles a record for every id. An id missing from either dataset
// fails the whole extraction with a *LookupError. A missing prediction is
// recorded as an empty string.
func Extract(ids []string, sources Sources) (map[string]Record, error) {
	records := make(map[string]Record, len(ids))
	for _, id := range ids {
		paragraph, original, ok := sources.Original.Lookup(id)
		if !ok {
			return nil, &LookupError{ID: id, Dataset: "original"}
		}
		_, compressed, ok := sources.Compressed.Lookup(id)
		if !ok {
			return nil, &LookupError{ID: id, Dataset: "compressed"}
		}
		answers := original.Answers
		if answers == nil {
			answers = []squad.Answer{}
		}
		records[id] = Record{
			Context:            paragraph.Context,
			Answers:            answers,
			OriginalQuestion:   original.Question,
			NewQuestion:        compressed.Question,
			OriginalPrediction: sources.OriginalPredictions[id],
			NewPrediction:      sources.CompressedPredictions[id],
		}
	}
	return records, nil
}
