package usecase

import "github.com/mariasoturna/AssistenteVirtual/internal/model"

// scoreSentiment sums signed lexicon weights over the token stream. A token
// immediately preceded by an intensifier has its weight scaled by that
// intensifier's multiplier; the effect covers exactly one token, whether or
// not it carries sentiment.
func scoreSentiment(tokens []string) model.Sentiment {
	score := 0.0
	for i, token := range tokens {
		intensity := 1.0
		if i > 0 {
			if m, ok := intensifiers[tokens[i-1]]; ok {
				intensity = m
			}
		}

		if w, ok := positiveWords[token]; ok {
			score += w * intensity
		} else if w, ok := negativeWords[token]; ok {
			score += w * intensity
		}
	}

	switch {
	case score > 2:
		return model.SentimentVeryPositive
	case score > 0:
		return model.SentimentPositive
	case score < -2:
		return model.SentimentVeryNegative
	case score < 0:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
