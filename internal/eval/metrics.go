package eval

// ExactMatch reports whether prediction equals groundTruth after normalization.
func ExactMatch(prediction, groundTruth string) bool {
	return NormalizeAnswer(prediction) == NormalizeAnswer(groundTruth)
}

// F1 returns the token-level F1 between prediction and groundTruth, counting
// shared tokens as a multiset intersection.
func F1(prediction, groundTruth string) float64 {
	predictionTokens := answerTokens(prediction)
	truthTokens := answerTokens(groundTruth)

	truthCounts := make(map[string]int, len(truthTokens))
	for _, token := range truthTokens {
		truthCounts[token]++
	}
	common := 0
	for _, token := range predictionTokens {
		if truthCounts[token] > 0 {
			truthCounts[token]--
			common++
		}
	}
	if common == 0 {
		return 0
	}
	precision := float64(common) / float64(len(predictionTokens))
	recall := float64(common) / float64(len(truthTokens))
	return 2 * precision * recall / (precision + recall)
}

// BestExactMatch returns 1 when prediction matches any ground truth.
func BestExactMatch(prediction string, groundTruths []string) float64 {
	normalized := NormalizeAnswer(prediction)
	for _, truth := range groundTruths {
		if normalized == NormalizeAnswer(truth) {
			return 1
		}
	}
	return 0
}

// BestF1 returns the highest F1 over all ground truths, or 0 when there are none.
func BestF1(prediction string, groundTruths []string) float64 {
	best := 0.0
	for _, truth := range groundTruths {
		best = max(best, F1(prediction, truth))
	}
	return best
}
