package eval

import "squadtrim/internal/squad"

// Result holds dataset-level scores for one prediction run.
type Result struct {
	// ExactMatch and F1 are percentages over every question in the dataset.
	ExactMatch float64
	F1         float64
	Total      int
	Answered   int
	// ExactMatchIDs lists exactly matched question ids in dataset order.
	ExactMatchIDs []string
	// Missing lists question ids without a prediction; they score 0.
	Missing []string
}

// Evaluate scores predictions against every question in dataset.
func Evaluate(dataset squad.Dataset, predictions squad.Predictions) Result {
	result := Result{ExactMatchIDs: []string{}, Missing: []string{}}
	var exactSum, f1Sum float64
	for _, article := range dataset.Articles {
		for _, paragraph := range article.Paragraphs {
			for _, qa := range paragraph.QAs {
				result.Total++
				prediction, ok := predictions[qa.ID]
				if !ok {
					result.Missing = append(result.Missing, qa.ID)
					continue
				}
				result.Answered++
				truths := qa.AnswerTexts()
				exact := BestExactMatch(prediction, truths)
				if exact == 1 {
					result.ExactMatchIDs = append(result.ExactMatchIDs, qa.ID)
				}
				exactSum += exact
				f1Sum += BestF1(prediction, truths)
			}
		}
	}
	if result.Total > 0 {
		result.ExactMatch = 100 * exactSum / float64(result.Total)
		result.F1 = 100 * f1Sum / float64(result.Total)
	}
	return result
}
