package squad

// ExpectedVersion is the dataset version the tooling is written against.
const ExpectedVersion = "1.1"

// Dataset is a SQuAD-style dataset file.
type Dataset struct {
	Version  string    `json:"version"`
	Articles []Article `json:"data"`
}

// Article groups the paragraphs taken from one source document.
type Article struct {
	Title      string      `json:"title,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph holds a context passage and the questions asked about it.
type Paragraph struct {
	Context string `json:"context"`
	QAs     []QA   `json:"qas"`
}

// QA is a single question with its acceptable ground-truth answers.
type QA struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Answers          []Answer `json:"answers"`
	IsImpossible     bool     `json:"is_impossible,omitempty"`
	PlausibleAnswers []Answer `json:"plausible_answers,omitempty"`
}

// Answer is one acceptable ground truth.
type Answer struct {
	AnswerStart *int   `json:"answer_start,omitempty"`
	Text        string `json:"text"`
}

// Predictions maps a question id to the predicted answer text.
type Predictions map[string]string

// AnswerTexts returns the ground-truth answer strings in order.
func (qa QA) AnswerTexts() []string {
	texts := make([]string, 0, len(qa.Answers))
	for _, answer := range qa.Answers {
		texts = append(texts, answer.Text)
	}
	return texts
}

// QuestionCount returns the number of questions in the dataset.
func (d Dataset) QuestionCount() int {
	total := 0
	for _, article := range d.Articles {
		for _, paragraph := range article.Paragraphs {
			total += len(paragraph.QAs)
		}
	}
	return total
}

// Clone returns a deep copy of the dataset so callers can rewrite
// questions without touching the source.
func (d Dataset) Clone() Dataset {
	out := Dataset{Version: d.Version, Articles: make([]Article, len(d.Articles))}
	for i, article := range d.Articles {
		copied := Article{Title: article.Title, Paragraphs: make([]Paragraph, len(article.Paragraphs))}
		for j, paragraph := range article.Paragraphs {
			qas := make([]QA, len(paragraph.QAs))
			for k, qa := range paragraph.QAs {
				qa.Answers = cloneAnswers(qa.Answers)
				qa.PlausibleAnswers = cloneAnswers(qa.PlausibleAnswers)
				qas[k] = qa
			}
			copied.Paragraphs[j] = Paragraph{Context: paragraph.Context, QAs: qas}
		}
		out.Articles[i] = copied
	}
	return out
}

func cloneAnswers(answers []Answer) []Answer {
	if answers == nil {
		return nil
	}
	out := make([]Answer, len(answers))
	for i, answer := range answers {
		if answer.AnswerStart != nil {
			start := *answer.AnswerStart
			answer.AnswerStart = &start
		}
		out[i] = answer
	}
	return out
}
