package intent

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

// LocalModel is the pre-built statistical intent artifact: a multinomial
// naive-Bayes over unigram and bigram features, fitted once at construction
// from the embedded training table. Predict is read-only and safe for
// concurrent use.
type LocalModel struct {
	labels    []model.Intent
	logPrior  []float64
	logLike   []map[string]float64 // per label: feature -> log P(feature|label)
	logUnseen []float64            // per label: smoothed log prob for unseen features
}

const laplaceAlpha = 1.0

// NewLocalModel fits the artifact from the embedded training examples.
func NewLocalModel() *LocalModel {
	labelIdx := map[model.Intent]int{}
	var labels []model.Intent
	var docCounts []float64
	var featCounts []map[string]float64
	var totalFeats []float64
	vocab := map[string]struct{}{}

	for _, ex := range trainingData {
		i, ok := labelIdx[ex.label]
		if !ok {
			i = len(labels)
			labelIdx[ex.label] = i
			labels = append(labels, ex.label)
			docCounts = append(docCounts, 0)
			featCounts = append(featCounts, map[string]float64{})
			totalFeats = append(totalFeats, 0)
		}
		docCounts[i]++
		for _, f := range featurize(ex.text) {
			featCounts[i][f]++
			totalFeats[i]++
			vocab[f] = struct{}{}
		}
	}

	m := &LocalModel{
		labels:    labels,
		logPrior:  make([]float64, len(labels)),
		logLike:   make([]map[string]float64, len(labels)),
		logUnseen: make([]float64, len(labels)),
	}
	totalDocs := float64(len(trainingData))
	v := float64(len(vocab))
	for i := range labels {
		m.logPrior[i] = math.Log(docCounts[i] / totalDocs)
		denom := totalFeats[i] + laplaceAlpha*v
		m.logUnseen[i] = math.Log(laplaceAlpha / denom)
		like := make(map[string]float64, len(featCounts[i]))
		for f, c := range featCounts[i] {
			like[f] = math.Log((c + laplaceAlpha) / denom)
		}
		m.logLike[i] = like
	}
	return m
}

// Predict scores the normalized text against every label and returns the best
// label with its softmax confidence in [0, 1].
func (m *LocalModel) Predict(text string) (model.Intent, float64) {
	feats := featurize(Normalize(text))
	scores := make([]float64, len(m.labels))
	for i := range m.labels {
		score := m.logPrior[i]
		for _, f := range feats {
			if ll, ok := m.logLike[i][f]; ok {
				score += ll
			} else {
				score += m.logUnseen[i]
			}
		}
		scores[i] = score
	}
	best := floats.MaxIdx(scores)
	confidence := math.Exp(scores[best] - floats.LogSumExp(scores))
	return m.labels[best], confidence
}

// featurize emits unigrams plus adjacent-word bigrams.
func featurize(text string) []string {
	words := strings.Fields(text)
	feats := make([]string, 0, 2*len(words))
	feats = append(feats, words...)
	for i := 0; i+1 < len(words); i++ {
		feats = append(feats, words[i]+" "+words[i+1])
	}
	return feats
}
