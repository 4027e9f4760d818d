package review

// Report is the output of an evaluate-and-sample run.
type Report struct {
	Cmd                  string            `json:"cmd"`
	RunID                string            `json:"run_id,omitempty"`
	SampleSize           int               `json:"sample_size"`
	SampleSeed           uint64            `json:"sample_seed"`
	QuestionsTotal       int               `json:"questions_total"`
	OriginalExactMatch   float64           `json:"original_exact_match"`
	OriginalF1           float64           `json:"original_f1"`
	NewExactMatch        float64           `json:"new_exact_match"`
	NewF1                float64           `json:"new_f1"`
	BothCorrectTotal     int               `json:"both_correct_total"`
	NewIncorrectTotal    int               `json:"new_incorrect_total"`
	NewIncorrectContexts map[string]Record `json:"new_incorrect_contexts"`
	BothCorrectContexts  map[string]Record `json:"both_correct_contexts"`
}

// Contexts assembles the two context maps for a drawn sample.
func Contexts(sample Sample, sources Sources) (newIncorrect, bothCorrect map[string]Record, err error) {
	newIncorrect, err = Extract(sample.SampledNewlyIncorrect, sources)
	if err != nil {
		return nil, nil, err
	}
	bothCorrect, err = Extract(sample.SampledBothCorrect, sources)
	if err != nil {
		return nil, nil, err
	}
	return newIncorrect, bothCorrect, nil
}
